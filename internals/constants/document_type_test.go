package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDocumentType(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"Surat_Rekomendasi_Kampus.pdf", DocSuratRekomendasi},
		{"surat-pengantar.docx", DocSuratRekomendasi},
		{"Proposal Magang 2026.pdf", DocProposal},
		{"CV_Budi.pdf", DocCVPortfolio},
		{"portfolio-final.pdf", DocCVPortfolio},
		{"ktm.jpg", DocOther},
		{"", DocOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectDocumentType(tc.filename, ""), tc.filename)
	}
}

func TestDetectDocumentTypeOverride(t *testing.T) {
	// Override manual menang atas heuristik nama file.
	assert.Equal(t, DocProposal, DetectDocumentType("cv.pdf", DocProposal))
	// Override tak dikenal diabaikan.
	assert.Equal(t, DocCVPortfolio, DetectDocumentType("cv.pdf", "ijazah"))
}

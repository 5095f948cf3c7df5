package constants

import "strings"

// Jenis dokumen pendaftaran magang.
const (
	DocSuratRekomendasi = "surat_rekomendasi"
	DocProposal         = "proposal"
	DocCVPortfolio      = "cv_portfolio"
	DocOther            = "other"
)

// DetectDocumentType mengklasifikasikan dokumen dari nama file (best-effort).
// override dari form dipakai lebih dulu bila berisi tipe yang dikenal.
func DetectDocumentType(filename, override string) string {
	switch override {
	case DocSuratRekomendasi, DocProposal, DocCVPortfolio, DocOther:
		return override
	}

	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "rekomendasi"), strings.Contains(name, "pengantar"):
		return DocSuratRekomendasi
	case strings.Contains(name, "proposal"):
		return DocProposal
	case strings.Contains(name, "cv"), strings.Contains(name, "portfolio"):
		return DocCVPortfolio
	default:
		return DocOther
	}
}

package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	"magangku_backend/internals/constants"
	activityService "magangku_backend/internals/features/activity/activity_logs/service"
	userModel "magangku_backend/internals/features/users/user/model"
	helpers "magangku_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueToken(c, db, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
		}
		// Akun Google baru: buat users + user_profiles sekaligus.
		user = userModel.UserModel{
			Email:    email,
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			if helpers.IsUniqueViolation(err) {
				return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		profile := userModel.UserProfileModel{
			ID:       user.ID,
			Name:     name,
			Email:    email,
			Role:     constants.RoleUser,
			IsActive: true,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("[WARNING] Gagal membuat profil user Google %s: %v", email, err)
		}
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueToken(c, db, user)
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func issueToken(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	var profile userModel.UserProfileModel
	if err := db.First(&profile, "id = ?", user.ID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil user")
	}
	if !profile.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"name":  profile.Name,
		"role":  profile.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	activityService.Log(db, activityService.Entry{
		UserEmail:    activityService.StrPtr(user.Email),
		UserName:     activityService.StrPtr(profile.Name),
		ActivityType: constants.ActivityLogin,
		Description:  "Login: " + user.Email,
		IPAddress:    c.IP(),
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	})

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int(accessTTL.Seconds()),
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  profile.Name,
			"role":  profile.Role,
		},
	})
}

func generateDummyPassword() string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	return string(hash)
}

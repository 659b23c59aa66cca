package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nurshapagat1/electronix-app/config"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// GoogleAdminLoginHandler handles admin login via Google OAuth2. First
// login registers a pending admin; only approved admins get a token.
func GoogleAdminLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB, cfg *config.Config) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		log.Printf("ID token verification failed: %v", err)
		http.Error(w, "Invalid or revoked ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		http.Error(w, "Email not found in token", http.StatusUnauthorized)
		return
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	userID := token.UID

	// Super admin shortcut
	if email == cfg.SuperAdminEmail {
		issueTokenAndRespond(w, cfg.JWTSecret, email, "superadmin", userID, name, picture)
		return
	}

	var admin models.Admin
	err = db.Where("email = ?", email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		admin = models.Admin{
			Email:    email,
			Name:     name,
			Picture:  picture,
			Approved: false,
		}
		if err := db.Create(&admin).Error; err != nil {
			http.Error(w, "Failed to register admin", http.StatusInternalServerError)
			return
		}
		log.Printf("New admin registered: %s (pending approval)", email)
		http.Error(w, "Pending approval by super admin", http.StatusForbidden)
		return
	} else if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
		http.Error(w, "Failed to update admin info", http.StatusInternalServerError)
		return
	}

	if err := db.First(&admin, admin.ID).Error; err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if !admin.Approved {
		http.Error(w, "Pending approval by super admin", http.StatusForbidden)
		return
	}

	issueTokenAndRespond(w, cfg.JWTSecret, email, "admin", userID, name, picture)
}

// issueTokenAndRespond issues a JWT and sends the JSON response.
func issueTokenAndRespond(w http.ResponseWriter, secret, email, role, userID, name, picture string) {
	jwtStr := generateAdminJWT(secret, email, role, userID)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   jwtStr,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}

func generateAdminJWT(secret, email, role, userID string) string {
	claims := jwt.MapClaims{
		"email":   email,
		"role":    role,
		"user_id": userID,
		"exp":     time.Now().AddDate(0, 2, 0).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		log.Printf("Failed to sign JWT: %v", err)
		return ""
	}
	return signed
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nurshapagat1/electronix-app/config"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// GoogleUserLoginHandler signs a shopper in with a Google ID token. The
// account row and its customer profile are both get-or-created here, so
// every later cart or review action has a backing customer.
func GoogleUserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB, cfg *config.Config) {
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
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}
	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	userID := token.UID

	var user models.User
	err = db.Where("id = ?", userID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			ID:       userID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
		}
		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
	case err == nil:
		// Returning user, refresh the profile fields.
		db.Model(&user).Updates(models.User{Name: name, Picture: picture})
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	customer, err := models.GetOrCreateCustomer(db, user.ID)
	if err != nil {
		http.Error(w, "Failed to create customer profile", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message":  "Login successful",
		"user":     user,
		"customer": customer,
		"token":    issueJWT(cfg.JWTSecret, email, "user", user.ID, name, picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// issueJWT generates a JWT token for a user
func issueJWT(secret, email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return ""
	}

	return signedToken
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"github.com/sweatscore/sweatscore/config"
	"github.com/sweatscore/sweatscore/middleware"
	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/utils"
)

// Slack OpenID Connect endpoints.
const (
	slackAuthorizeURL = "https://slack.com/openid/connect/authorize"
	slackTokenURL     = "https://slack.com/api/openid.connect.token"
	slackUserInfoURL  = "https://slack.com/api/openid.connect.userInfo"
)

const sessionDuration = 7 * 24 * time.Hour

// AuthController handles Slack OAuth sign-in and session endpoints.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new controller instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

func (a *AuthController) oauthConfig() *oauth2.Config {
	cfg := config.Get()
	return &oauth2.Config{
		ClientID:     cfg.SlackClientID,
		ClientSecret: cfg.SlackClientSecret,
		RedirectURL:  cfg.OAuthRedirectBase + "/api/v1/auth/slack/callback",
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  slackAuthorizeURL,
			TokenURL: slackTokenURL,
		},
	}
}

// SlackLogin redirects the browser to Slack's consent screen with a
// single-use state nonce.
func (a *AuthController) SlackLogin(ctx *gin.Context) {
	state := uuid.NewString()
	utils.SaveState(state, 10*time.Minute)
	ctx.Redirect(http.StatusFound, a.oauthConfig().AuthCodeURL(state))
}

// slackUserInfo is the subset of the OIDC userInfo payload we consume.
type slackUserInfo struct {
	OK      bool   `json:"ok"`
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SlackCallback exchanges the authorization code, upserts the user on first
// sign-in, and issues a session token.
func (a *AuthController) SlackCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	code := ctx.Query("code")
	if state == "" || code == "" {
		utils.Error(ctx, http.StatusBadRequest, 40020, "missing state or code")
		return
	}
	if !utils.ConsumeState(state) {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid or expired oauth state")
		return
	}

	conf := a.oauthConfig()
	token, err := conf.Exchange(ctx.Request.Context(), code)
	if err != nil {
		utils.Sugar.Warnf("slack code exchange failed: %v", err)
		utils.Error(ctx, http.StatusBadGateway, 50220, "oauth exchange failed")
		return
	}

	client := conf.Client(ctx.Request.Context(), token)
	resp, err := client.Get(slackUserInfoURL)
	if err != nil {
		utils.Sugar.Warnf("slack userinfo request failed: %v", err)
		utils.Error(ctx, http.StatusBadGateway, 50221, "failed to fetch slack profile")
		return
	}
	defer resp.Body.Close()

	var info slackUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Sub == "" {
		utils.Error(ctx, http.StatusBadGateway, 50222, "invalid slack profile response")
		return
	}

	user, err := a.upsertUser(info)
	if err != nil {
		utils.Sugar.Errorf("user upsert failed for slack id %s: %v", info.Sub, err)
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to persist user")
		return
	}

	jwtToken, err := utils.GenerateToken(user.ID, user.SlackID, user.Name, sessionDuration)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to issue session token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": jwtToken,
		"user":  user,
	})
}

// upsertUser creates the user on first sign-in and refreshes name/photo on
// subsequent ones. TotalPoints is never touched here; only the ledger
// accountant writes it.
func (a *AuthController) upsertUser(info slackUserInfo) (*models.User, error) {
	var user models.User
	err := a.db.Where("slack_id = ?", info.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			SlackID:     info.Sub,
			Name:        info.Name,
			PhotoURL:    info.Picture,
			TotalPoints: 0,
		}
		if err := a.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Name != info.Name || user.PhotoURL != info.Picture {
		user.Name = info.Name
		user.PhotoURL = info.Picture
		if err := a.db.Model(&user).Updates(map[string]interface{}{
			"name":      info.Name,
			"photo_url": info.Picture,
		}).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// Me returns the session user.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load user")
		return
	}

	cfg := config.Get()
	isAdmin := false
	for _, id := range cfg.AdminSlackIDs {
		if id == user.SlackID {
			isAdmin = true
			break
		}
	}

	utils.Success(ctx, gin.H{
		"user":     user,
		"is_admin": isAdmin,
	})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusBadRequest, 40022, "missing bearer token")
		return
	}
	tokenString := strings.TrimSpace(parts[1])

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(sessionDuration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(tokenString, expiresAt)

	utils.Success(ctx, gin.H{"message": "logged out"})
}

// getUserID reads the authenticated user id placed in context by AuthRequired.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

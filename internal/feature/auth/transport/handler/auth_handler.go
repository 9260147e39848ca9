// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"digital_mechanic/internal/api"
	"digital_mechanic/internal/feature/auth/transport/http/dto"
	"digital_mechanic/internal/feature/auth/usecase"
	"digital_mechanic/internal/platform/logging"
)

const (
	msgLoginOK        = "Login successful"
	msgRegistered     = "User registered"
	msgInvalidRequest = "Email and password are required"
	msgInvalidLogin   = "Invalid email or password"
	msgRegisterFirst  = "User not found. Please register."
	msgServerError    = "Server error"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// AuthenticateOrRegister は既存ユーザーを認証するか、nameが指定されていれば新規登録します。
	AuthenticateOrRegister(ctx context.Context, email, password, name string) (*usecase.AuthResult, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はログイン兼登録APIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド、失敗時は400
// - 既存ユーザーの認証成功時は200、新規登録時は201
// - パスワード不一致は401、未登録でname無しは404
// - その他のエラーは500（詳細はログのみ）
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	log := logging.FromContext(ctx)

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidRequest})
		return
	}

	res, err := h.auth.AuthenticateOrRegister(ctx, req.Email, req.Password, req.Name)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("login rejected", "reason", "invalid input", "email", req.Email)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidRequest})
		return
	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msgInvalidLogin})
		return
	case errors.Is(err, usecase.ErrRegistrationRequired):
		log.Info("login for unknown email without name", "email", req.Email)
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgRegisterFirst})
		return
	default:
		log.Error("login error", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgServerError})
		return
	}

	if res.Outcome == usecase.OutcomeCreated {
		log.Info("user registered", "user_id", res.User.ID, "email", res.User.Email)
		c.JSON(http.StatusCreated, dto.LoginRes{Message: msgRegistered, User: dto.NewUserSummary(res.User)})
		return
	}
	log.Info("user login successful", "user_id", res.User.ID, "email", res.User.Email)
	c.JSON(http.StatusOK, dto.LoginRes{Message: msgLoginOK, User: dto.NewUserSummary(res.User)})
}

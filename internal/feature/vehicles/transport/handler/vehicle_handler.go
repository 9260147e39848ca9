// Package handler はvehiclesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"digital_mechanic/internal/api"
	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/feature/vehicles/transport/http/dto"
	"digital_mechanic/internal/feature/vehicles/usecase"
	"digital_mechanic/internal/platform/logging"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidUserID = "Invalid or missing User ID provided. Please log in again."
	msgInvalidCar    = "Make, model and year are required."
	msgOwnerNotFound = "User not found. Please log in again."
	msgFetchFailed   = "Error fetching cars"
	msgAddFailed     = "Error adding car"
)

// VehicleUsecase は車両登録簿のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type VehicleUsecase interface {
	ListVehicles(ctx context.Context, userID string) ([]entity.Vehicle, error)
	AddVehicle(ctx context.Context, in usecase.VehicleInput) (*entity.Vehicle, error)
}

// VehicleHandler は車両に関するHTTPリクエストを処理します。
type VehicleHandler struct {
	uc VehicleUsecase
}

// NewVehicleHandler は新しい VehicleHandler を作成します。
func NewVehicleHandler(uc VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// List はパスパラメータ userId の車両一覧を返します。
// 不正なuserIdの場合は空配列、ストアのエラー時は500を返します。
func (h *VehicleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	vehicles, err := h.uc.ListVehicles(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("list vehicles failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, dto.NewVehicleList(vehicles))
}

// Add は車両を登録します。
// - userIdが欠落・不正な場合は400
// - make/model/yearが欠けている場合は400
// - 成功時は作成された車両を201で返却
func (h *VehicleHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	log := logging.FromContext(ctx)

	var req dto.AddVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("add vehicle validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidBody})
		return
	}

	v, err := h.uc.AddVehicle(ctx, usecase.VehicleInput{
		Make:   req.Make,
		Model:  req.Model,
		Year:   int(req.Year),
		UserID: req.UserID,
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidUserID):
		log.Warn("add vehicle rejected", "reason", "invalid user id", "user_id", req.UserID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidUserID})
		return
	case errors.Is(err, usecase.ErrInvalidVehicle):
		log.Warn("add vehicle rejected", "reason", "missing fields", "user_id", req.UserID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidCar})
		return
	case errors.Is(err, usecase.ErrOwnerNotFound):
		log.Warn("add vehicle rejected", "reason", "unknown owner", "user_id", req.UserID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgOwnerNotFound})
		return
	default:
		log.Error("add vehicle failed", "error", err, "user_id", req.UserID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgAddFailed})
		return
	}

	log.Info("vehicle added", "vehicle_id", v.ID, "user_id", v.OwnerID)
	c.JSON(http.StatusCreated, dto.NewVehicleRes(*v))
}

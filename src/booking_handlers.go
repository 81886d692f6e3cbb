package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"explorecamp/src/db"
	"explorecamp/src/lib"
	"explorecamp/src/models"
	"explorecamp/src/types"
	"explorecamp/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yeqown/go-qrcode"
)

// rejectionStatus maps the booking core's rejection errors onto HTTP codes.
// Every reason keeps its own message so clients can tell them apart.
func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidRange),
		errors.Is(err, types.ErrPastDate),
		errors.Is(err, types.ErrCancelPending),
		errors.Is(err, types.ErrCancelCancelled):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrProductNotFound),
		errors.Is(err, types.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrDatesUnavailable):
		return http.StatusConflict
	case errors.Is(err, types.ErrIllegalTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			booking, err := utils.ReserveBooking(&body, userId)
			if err != nil {
				log.Printf("Could not reserve booking for user [%d]: %s\n", userId, err.Error())
				ctx.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			bookings, err := utils.GetOwnBookings(userId)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			var booking models.Booking
			d := db.GetDb()
			if err := d.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID, UserID: userId}).
				Preload("Product").
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": types.ErrBookingNotFound.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := types.ActorRole(ctx.GetString("role"))
			result, err := utils.CancelBooking(params.ID, userId, role)
			if err != nil {
				log.Printf("Could not cancel booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"message":             "Booking cancelled successfully",
				"cancellation_charge": result.CancellationCharge,
				"refund_amount":       result.RefundAmount,
				"total_paid":          result.TotalPaid,
			})
		}).
		GET("/bookings/:id/code", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			var booking models.Booking
			d := db.GetDb()
			if err := d.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID, UserID: userId}).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": types.ErrBookingNotFound.Error()})
				return
			}
			if booking.Status != types.BOOKING_CONFIRMED {
				ctx.JSON(http.StatusConflict, gin.H{"error": "booking code is only available for confirmed bookings"})
				return
			}

			filename := fmt.Sprintf("bookingcode_%d", booking.ID)
			tempdir := os.Getenv("TEMP_DIR")
			filepath := path.Join(tempdir, fmt.Sprintf("%s.jpeg", filename))

			rd := lib.GetRedisClient()
			cached, err := rd.Get(context.Background(), filename).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				log.Printf("Error reading from cache: %s\n", err.Error())
			}
			if cached != "" {
				if _, err := os.Stat(cached); err == nil {
					ctx.FileAttachment(cached, "booking-code.jpeg")
					return
				}
			}

			qrc, err := qrcode.New(booking.Reference.String())
			if err != nil {
				log.Printf("Could not build code for booking [%d]: %s\n", booking.ID, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if err := qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			rd.SetEx(context.Background(), filename, filepath, 2*time.Hour)
			ctx.FileAttachment(filepath, "booking-code.jpeg")
		})
	return g
}

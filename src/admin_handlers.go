package main

import (
	"log"
	"net/http"

	"explorecamp/src/common"
	"explorecamp/src/db"
	"explorecamp/src/models"
	"explorecamp/src/types"
	"explorecamp/src/utils"

	"github.com/gin-gonic/gin"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/admin/bookings", func(ctx *gin.Context) {
			var bookings []models.Booking
			d := db.GetDb()
			if err := d.
				Model(&models.Booking{}).
				Preload("User").
				Preload("Product").
				Order("created_at desc").
				Find(&bookings).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		PUT("/admin/bookings/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := utils.SetBookingStatus(params.ID, body.Status, types.ROLE_ADMIN)
			if err != nil {
				log.Printf("Could not update status of booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
				return
			}
			if booking.Status == types.BOOKING_CONFIRMED {
				go common.SendBookingConfirmedEmail(booking.ID)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"explorecamp/src/db"
	"explorecamp/src/lib"
	"explorecamp/src/models"
	"explorecamp/src/types"
	"explorecamp/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func availabilityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/products/:id/availability", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var query types.AvailabilityQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if (query.From == "") != (query.To == "") {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": types.ErrInvalidRange.Error()})
				return
			}
			d := db.GetDb()

			if query.From != "" && query.To != "" {
				from, _ := utils.ParseDate(query.From)
				to, _ := utils.ParseDate(query.To)
				if !from.Before(to) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": types.ErrInvalidRange.Error()})
					return
				}
				slots, err := utils.QueryAvailabilityRange(d, params.ID, from, to)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"data": slots, "count": len(slots)})
				return
			}

			cacheKey := utils.AvailabilityCacheKey(params.ID)
			rd := lib.GetRedisClient()
			cached, err := rd.Get(context.Background(), cacheKey).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				log.Printf("Error reading from cache: %s\n", err.Error())
			}
			if cached != "" {
				var slots []models.Availability
				if err := json.Unmarshal([]byte(cached), &slots); err == nil {
					ctx.JSON(http.StatusOK, gin.H{"data": slots, "count": len(slots)})
					return
				}
			}

			var slots []models.Availability
			if err := d.
				Model(&models.Availability{}).
				Where(&models.Availability{ProductID: params.ID}).
				Order("date asc").
				Find(&slots).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if raw, err := json.Marshal(slots); err == nil {
				rd.SetEx(context.Background(), cacheKey, string(raw), 10*time.Minute)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": slots, "count": len(slots)})
		})
	return g
}

func availabilityAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/products/:id/availability", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.OpenDatesRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			dates := make([]time.Time, 0, len(body.Dates))
			for _, raw := range body.Dates {
				date, err := utils.ParseDate(raw)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				dates = append(dates, date)
			}
			added, err := utils.OpenProductDates(params.ID, dates)
			if err != nil {
				log.Printf("Could not open dates for product [%d]: %s\n", params.ID, err.Error())
				status := http.StatusConflict
				if errors.Is(err, types.ErrProductNotFound) {
					status = http.StatusNotFound
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"message": "Dates opened for booking", "count": added})
		})
	return g
}

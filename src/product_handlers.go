package main

import (
	"log"
	"net/http"

	"explorecamp/src/db"
	"explorecamp/src/models"
	"explorecamp/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

func productHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/products", func(ctx *gin.Context) {
			var products []models.Product
			d := db.GetDb()
			if err := d.
				Model(&models.Product{}).
				Order("created_at desc").
				Find(&products).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": products, "count": len(products)})
		}).
		GET("/products/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var product models.Product
			d := db.GetDb()
			if err := d.
				Model(&models.Product{}).
				Where(&models.Product{ID: params.ID}).
				First(&product).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": types.ErrProductNotFound.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": product})
		})
	return g
}

func toJSONBArray(items []string) types.JSONBArray {
	arr := make(types.JSONBArray, 0, len(items))
	for _, item := range items {
		arr = append(arr, item)
	}
	return arr
}

func productAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/products", func(ctx *gin.Context) {
			var body types.CreateProductRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			product := models.Product{
				Name:          body.Name,
				Slug:          slug.Make(body.Name),
				Location:      body.Location,
				About:         body.About,
				PricePerNight: body.PricePerNight,
				Images:        toJSONBArray(body.Images),
				Amenities:     toJSONBArray(body.Amenities),
				Latitude:      body.Latitude,
				Longitude:     body.Longitude,
				OwnerID:       userId,
			}
			if body.CheckInTime != "" {
				product.CheckInTime = body.CheckInTime
			}
			if body.CheckOutTime != "" {
				product.CheckOutTime = body.CheckOutTime
			}
			d := db.GetDb()
			if err := d.Create(&product).Error; err != nil {
				log.Printf("Could not create product [%s]: %s\n", body.Name, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": product})
		})
	return g
}

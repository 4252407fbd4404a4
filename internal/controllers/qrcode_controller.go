package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"catalog-be/internal/service"
)

type QRCodeController struct {
	productService service.ProductService
	frontendURL    string
}

func NewQRCodeController(productService service.ProductService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		productService: productService,
		frontendURL:    frontendURL,
	}
}

// GenerateProductQR handles GET /api/v1/products/:id/qrcode - renders a QR
// code pointing at the product's frontend page. 404 for unknown products.
func (qc *QRCodeController) GenerateProductQR(c *gin.Context) {
	product, err := qc.productService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	productURL := qc.frontendURL + "/products/" + product.ID

	qrCode, err := qrcode.New(productURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to render QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}

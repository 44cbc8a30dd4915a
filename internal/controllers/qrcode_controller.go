package controllers

import (
	"net/http"
	"strings"

	"booktracker-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

// QRCodeSize is the edge length of generated PNGs in pixels
const QRCodeSize = 256

type QRCodeController struct {
	bookService service.BookService
	frontendURL string
	log         logrus.FieldLogger
}

func NewQRCodeController(bookService service.BookService, frontendURL string, log logrus.FieldLogger) *QRCodeController {
	return &QRCodeController{
		bookService: bookService,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		log:         log,
	}
}

// ShareURL is the frontend page a book's QR code points at
func (qc *QRCodeController) ShareURL(bookID string) string {
	return qc.frontendURL + "/books/" + bookID
}

// GenerateBookQRCode handles GET /api/books/:id/qrcode
func (qc *QRCodeController) GenerateBookQRCode(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	book, err := qc.bookService.GetOwned(c.Request.Context(), identity.ID, c.Param("id"))
	if err != nil {
		respondBookError(c, qc.log, err, "share")
		return
	}

	// Medium error recovery
	qrCode, err := qrcode.New(qc.ShareURL(book.ID), qrcode.Medium)
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pngData, err := qrCode.PNG(QRCodeSize)
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "Failed to generate QR code image")
		return
	}

	c.Header("Content-Disposition", "inline; filename=book-"+book.ID+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}

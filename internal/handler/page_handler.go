package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharegeb/internal/session"
)

// PageHandler serves the dashboard and the ride/discount/payment pages.
// The booking, cancellation, discount and payment POST branches only
// re-render with a confirmation message: their business rules (fare
// calculation, discount validation, payment reconciliation) are not
// implemented yet and the forms are placeholders until they are.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	rec, _ := session.FromContext(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"session": rec})
}

func (h *PageHandler) BookRidePage(c *gin.Context) {
	c.HTML(http.StatusOK, "book_ride.html", gin.H{})
}

func (h *PageHandler) BookRide(c *gin.Context) {
	c.HTML(http.StatusOK, "book_ride.html", gin.H{"message": "Ride booked!"})
}

func (h *PageHandler) CancelRidePage(c *gin.Context) {
	c.HTML(http.StatusOK, "cancel_ride.html", gin.H{})
}

func (h *PageHandler) CancelRide(c *gin.Context) {
	c.HTML(http.StatusOK, "cancel_ride.html", gin.H{"message": "Ride canceled!"})
}

func (h *PageHandler) DiscountsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "voucher.html", gin.H{})
}

func (h *PageHandler) ApplyDiscount(c *gin.Context) {
	c.HTML(http.StatusOK, "voucher.html", gin.H{"message": "Discount applied!"})
}

func (h *PageHandler) PaymentPage(c *gin.Context) {
	c.HTML(http.StatusOK, "payment.html", gin.H{})
}

func (h *PageHandler) Payment(c *gin.Context) {
	c.HTML(http.StatusOK, "payment.html", gin.H{"message": "Payment successful!"})
}

type mockRide struct {
	From   string
	To     string
	Date   string
	Time   string
	Status string
	Rating *int
}

// RecentRides renders placeholder ride history; the page is not backed by
// real queries yet.
func (h *PageHandler) RecentRides(c *gin.Context) {
	five := 5
	rides := []mockRide{
		{From: "Hoan Kiem Lake", To: "Temple of Literature", Date: "15/03/2024", Time: "14:30", Status: "Completed"},
		{From: "West Lake", To: "Lotte Center", Date: "10/03/2024", Time: "09:15", Status: "Completed", Rating: &five},
	}
	c.HTML(http.StatusOK, "recent_rides.html", gin.H{"rides": rides})
}

func (h *PageHandler) Settings(c *gin.Context) {
	rec, _ := session.FromContext(c)
	c.HTML(http.StatusOK, "settings.html", gin.H{"session": rec})
}

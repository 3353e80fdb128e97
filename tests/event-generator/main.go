package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type StatusUpdate struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type TrackingEvent struct {
	BookingID         string        `json:"booking_id"`
	TrackingNumber    *string       `json:"tracking_number,omitempty"`
	TrackingURL       *string       `json:"tracking_url,omitempty"`
	EstimatedDelivery *time.Time    `json:"estimated_delivery,omitempty"`
	CurrentLocation   *string       `json:"current_location,omitempty"`
	StatusUpdate      *StatusUpdate `json:"status_update,omitempty"`
}

var locations = []string{
	"Hamburg, DE", "Rotterdam, NL", "Antwerp, BE",
	"Gdansk, PL", "Vilnius, LT", "Kaunas, LT",
}

var statuses = []string{
	"pickup_scheduled", "in_transit", "customs_clearance", "delivered",
}

func randomEvent(bookingID string) TrackingEvent {
	event := TrackingEvent{BookingID: bookingID}

	if rand.Intn(3) == 0 {
		num := fmt.Sprintf("TRK-%08d", rand.Intn(99999999))
		url := "https://tracking.example.com/" + num
		event.TrackingNumber = &num
		event.TrackingURL = &url
	}

	if rand.Intn(2) == 0 {
		loc := locations[rand.Intn(len(locations))]
		event.CurrentLocation = &loc
	}

	if rand.Intn(4) == 0 {
		eta := time.Now().Add(time.Duration(rand.Intn(14)+1) * 24 * time.Hour)
		event.EstimatedDelivery = &eta
	}

	if rand.Intn(3) == 0 {
		event.StatusUpdate = &StatusUpdate{
			Status:   statuses[rand.Intn(len(statuses))],
			Location: locations[rand.Intn(len(locations))],
		}
	}

	return event
}

func main() {
	bookingID := os.Getenv("BOOKING_ID")
	if bookingID == "" {
		log.Fatal("BOOKING_ID is required")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "tracking-events",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := randomEvent(bookingID)
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Println("tracking event generated for", event.BookingID)
		case <-ctx.Done():
			return
		}
	}
}

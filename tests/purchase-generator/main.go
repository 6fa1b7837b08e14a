package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Parcel struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Length int `json:"length"`
}

type Purchase struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	ProductID      int64     `json:"productId"`
	PostomatID     int64     `json:"postomatId"`
	DeliveryMethod string    `json:"deliveryMethod"`
	CourierMode    string    `json:"courierMode,omitempty"`
	Parcel         Parcel    `json:"parcel"`
	DateBuy        time.Time `json:"dateBuy"`
}

var deliveryMethods = []string{"POSTOMAT", "POSTOMAT", "COURIER", "BRANCH"}

func generateRandomPurchase(id, lockerID int64) Purchase {
	p := Purchase{
		ID:             id,
		UserID:         rand.Int63n(100) + 1,
		ProductID:      rand.Int63n(1000) + 1,
		PostomatID:     lockerID,
		DeliveryMethod: deliveryMethods[rand.Intn(len(deliveryMethods))],
		DateBuy:        time.Now().UTC(),
	}
	if p.DeliveryMethod == "COURIER" {
		p.CourierMode = "POSTOMAT"
		if rand.Intn(2) == 0 {
			p.CourierMode = "HOME"
		}
	}
	// Часть товаров без габаритов
	if rand.Intn(4) != 0 {
		p.Parcel = Parcel{
			Width:  rand.Intn(400) + 50,
			Height: rand.Intn(300) + 20,
			Length: rand.Intn(500) + 50,
		}
	}
	return p
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "purchases", "purchases topic")
	lockerID := flag.Int64("locker", 1, "target locker id")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*brokers),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	id := time.Now().Unix()
	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			id++
			purchase := generateRandomPurchase(id, *lockerID)
			data, _ := json.Marshal(purchase)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write purchase:", err)
				continue
			}
			log.Println("purchase generated", purchase.ID, purchase.DeliveryMethod)
		case <-ctx.Done():
			return
		}
	}
}

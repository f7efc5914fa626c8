package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Order struct {
	ID        string `json:"id"`
	OrderNo   string `json:"order_no"`
	CusName   string `json:"cus_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

var (
	names    = []string{"Jane Doe", "John Smith", "Alice Wang", "Bob Chen", "Carol Lin"}
	statuses = []string{"Paid", "Paid", "Paid", "Pending", "Failed", "Refunded"}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	writer := &kafka.Writer{
		Addr:     kafka.TCP("localhost:9092"),
		Topic:    "orders",
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		order := randomOrder(i)
		value, err := json.Marshal(order)
		if err != nil {
			log.Fatal(err)
		}

		err = writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(order.OrderNo),
			Value: value,
		})
		if err != nil {
			log.Println("failed to write message:", err)
			continue
		}
		log.Println("produced order", order.OrderNo, order.Status)
	}
}

func randomOrder(i int) Order {
	name := names[rand.Intn(len(names))]
	now := time.Now().Unix()
	return Order{
		ID:        randomID(16),
		OrderNo:   fmt.Sprintf("ORD-%06d", i),
		CusName:   name,
		Email:     fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		Phone:     fmt.Sprintf("09%08d", rand.Intn(100000000)),
		Status:    statuses[rand.Intn(len(statuses))],
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

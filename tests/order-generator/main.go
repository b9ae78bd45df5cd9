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

	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/segmentio/kafka-go"
)

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    any    `json:"price"`
	Image    string `json:"image,omitempty"`
}

type Order struct {
	Items   []Item `json:"items"`
	Total   any    `json:"total"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

var products = []struct {
	name  string
	price int
}{
	{"Madhubani Fish Painting", 1200},
	{"Mithila Peacock Print", 850},
	{"Handmade Clay Elephant", 600},
	{"Sikki Grass Basket", 450},
	{"Janakpur Wall Hanging", 1500},
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() Order {
	var (
		items []Item
		total int
	)
	for range rand.Intn(3) + 1 {
		p := products[rand.Intn(len(products))]
		qty := rand.Intn(3) + 1
		var price any = p.price
		// partner sites sometimes send the display price
		if rand.Intn(4) == 0 {
			price = fmt.Sprintf("रु %d", p.price)
		}
		items = append(items, Item{Name: p.name, Quantity: qty, Price: price})
		total += p.price * qty
	}

	name := randomString(6)
	return Order{
		Items:   items,
		Total:   total,
		Name:    name,
		Email:   name + "@example.com",
		Phone:   fmt.Sprintf("98%08d", rand.Intn(99999999)),
		Address: fmt.Sprintf("Ward %d, Janakpur", rand.Intn(25)+1),
	}
}

func main() {
	brokers := envOr("KAFKA_BROKERS", "localhost:9092")
	topic := envOr("KAFKA_INTAKE_TOPIC", "storefront.orders.intake")

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	retry := utils.RetryConfig{MaxAttempts: 5, InitialDelay: 200 * time.Millisecond, MaxDelay: 2 * time.Second}

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			data, _ := json.Marshal(generateRandomOrder())
			// every tenth message is broken on purpose and should land in the DLQ
			if rand.Intn(10) == 0 {
				data = []byte(`{"items":[]}`)
			}

			err := utils.Retry(ctx, retry, func() error {
				return writer.WriteMessages(ctx, kafka.Message{Value: data})
			}, context.Canceled)
			if err != nil {
				log.Println("failed to publish order:", err)
				continue
			}
			log.Println("order published", string(data))
		case <-ctx.Done():
			return
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

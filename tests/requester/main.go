package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:3000/api"

var statuses = []string{"accepted", "delivered"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	switch rand.Intn(6) {
	case 0:
		get("/products")
	case 1:
		get("/sales/summary")
	case 2:
		get("/products/" + randomSlug())
	case 3:
		createOrder()
	default:
		advanceOrder()
	}
}

func get(path string) {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", path, "->", resp.Status)
	resp.Body.Close()
}

func createOrder() {
	body, _ := json.Marshal(map[string]any{
		"items": []map[string]any{{"name": "Sikki Grass Basket", "quantity": 1, "price": 450}},
		"total": 450,
		"name":  "load test",
	})
	resp, err := http.Post(baseURL+"/orders", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("POST /orders ->", resp.Status)
	resp.Body.Close()
}

// advanceOrder moves a random known order one step further.
func advanceOrder() {
	resp, err := http.Get(baseURL + "/orders")
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	var orders []struct {
		OrderID string `json:"orderId"`
	}
	json.NewDecoder(resp.Body).Decode(&orders)
	resp.Body.Close()
	if len(orders) == 0 {
		return
	}

	id := orders[rand.Intn(len(orders))].OrderID
	body, _ := json.Marshal(map[string]string{"status": statuses[rand.Intn(len(statuses))]})
	req, _ := http.NewRequest(http.MethodPatch, baseURL+"/orders/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("PATCH /orders/"+id, "->", resp.Status)
	resp.Body.Close()
}

func randomSlug() string {
	slugs := []string{"madhubani-fish-painting", "sikki-grass-basket", "no-such-product"}
	return slugs[rand.Intn(len(slugs))]
}

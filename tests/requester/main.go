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

const (
	baseURL      = "http://localhost:8080/invoice/requests"
	fixedOrderNo = "ORD-000001"
)

type request struct {
	OrderNo    string `json:"order_no"`
	CusName    string `json:"cus_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ProviderID string `json:"provider_id"`
}

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
	orderNo := fixedOrderNo
	if rand.Intn(5) == 0 {
		orderNo = fmt.Sprintf("ORD-%06d", rand.Intn(1000000))
	}

	body, _ := json.Marshal(request{
		OrderNo:    orderNo,
		CusName:    "Jane Doe",
		Email:      "jane@example.com",
		ProviderID: "p1",
	})

	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("POST", orderNo, "->", resp.Status)
	resp.Body.Close()
}

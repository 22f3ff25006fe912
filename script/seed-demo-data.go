package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// CustomerRequest represents the customer creation payload
type CustomerRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// CustomerResponse represents the customer API response
type CustomerResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

// TransactionRequest represents the transaction creation payload
type TransactionRequest struct {
	CustomerID  uint64 `json:"customerId"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// TransactionResponse represents the transaction API response
type TransactionResponse struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}

// PaymentRequest represents the payment payload
type PaymentRequest struct {
	TransactionID uint64 `json:"transactionId"`
	Method        string `json:"method"`
}

// PaymentResponse represents the payment API response
type PaymentResponse struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}

type seedTransaction struct {
	Amount   string
	Category string
	Pay      bool
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "demo@example.com", "Email of the demo customer")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	api := *baseURL + "/api/v1"

	customer, err := createCustomer(client, api, *email)
	if err != nil {
		fmt.Printf("Failed to create customer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Customer %d (%s)\n", customer.ID, customer.Email)

	seeds := []seedTransaction{
		{Amount: "10.00", Category: "Retail", Pay: true},
		{Amount: "20.005", Category: "Retail", Pay: true},
		{Amount: "5.00", Category: "Retail", Pay: true},
		{Amount: "42.00", Category: "Travel", Pay: true},
		{Amount: "13.37", Category: "Travel", Pay: false},
	}

	for _, seed := range seeds {
		txn, err := createTransaction(client, api, customer.ID, seed)
		if err != nil {
			fmt.Printf("Failed to create transaction: %v\n", err)
			os.Exit(1)
		}

		if !seed.Pay {
			fmt.Printf("Transaction %d left %s\n", txn.ID, txn.Status)
			continue
		}

		pay, err := makePayment(client, api, txn.ID)
		if err != nil {
			fmt.Printf("Failed to pay transaction %d: %v\n", txn.ID, err)
			os.Exit(1)
		}
		fmt.Printf("Transaction %d paid, payment %d is %s\n", txn.ID, pay.ID, pay.Status)
	}

	summaryURL := fmt.Sprintf("%s/analytics/spend-summary?customerId=%d", api, customer.ID)
	fmt.Printf("Spend summary: %s\n", summaryURL)
}

func createCustomer(client *http.Client, api, email string) (*CustomerResponse, error) {
	body := CustomerRequest{FullName: "Demo Customer", Email: email}
	var out CustomerResponse
	if err := postJSON(client, api+"/customers", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func createTransaction(client *http.Client, api string, customerID uint64, seed seedTransaction) (*TransactionResponse, error) {
	body := TransactionRequest{
		CustomerID: customerID,
		Amount:     seed.Amount,
		Currency:   "USD",
		Category:   seed.Category,
	}
	var out TransactionResponse
	if err := postJSON(client, api+"/transactions", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func makePayment(client *http.Client, api string, transactionID uint64) (*PaymentResponse, error) {
	body := PaymentRequest{TransactionID: transactionID, Method: "CARD"}
	var out PaymentResponse
	if err := postJSON(client, api+"/payments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func postJSON(client *http.Client, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

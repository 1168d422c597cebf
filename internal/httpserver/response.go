package httpserver

import (
	"bahikhata/internal/domain"
	"bahikhata/internal/notify"
	ledgersvc "bahikhata/internal/service/ledger"
)

type signInResponse struct {
	Token string            `json:"token"`
	Owner domain.StoreOwner `json:"owner"`
}

type createTransactionResponse struct {
	Transaction domain.Transaction `json:"transaction"`
	Customer    domain.Customer    `json:"customer"`
	Message     string             `json:"message"`
}

type customerDetailResponse struct {
	domain.CustomerAccount
	Transactions []domain.Transaction `json:"transactions"`
	ReminderURL  string               `json:"reminderUrl,omitempty"`
}

// toCustomerDetail attaches the WhatsApp reminder deep link when the customer
// has a phone on file.
func toCustomerDetail(owner *domain.StoreOwner, detail *ledgersvc.CustomerDetail) customerDetailResponse {
	resp := customerDetailResponse{
		CustomerAccount: detail.CustomerAccount,
		Transactions:    detail.Transactions,
	}
	if resp.Transactions == nil {
		resp.Transactions = []domain.Transaction{}
	}
	if detail.Phone != "" {
		msg := notify.ReminderMessage(owner.StoreName, detail.DisplayName, detail.CurrentBalance)
		resp.ReminderURL = notify.WhatsAppURL(detail.Phone, msg)
	}
	return resp
}

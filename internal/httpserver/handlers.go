package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bahikhata/internal/domain"
	authsvc "bahikhata/internal/service/auth"
	ledgersvc "bahikhata/internal/service/ledger"
)

func signInHandler(svc AuthService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in authsvc.SignInInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		owner, token, err := svc.SignIn(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, authsvc.ErrPhoneRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Printf("sign-in: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, signInResponse{Token: token, Owner: *owner})
	}
}

func listCustomersHandler(svc LedgerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := ownerFrom(c)
		customers, err := svc.ListCustomers(c.Request.Context(), owner.ID)
		if err != nil {
			logger.Printf("list customers owner=%s: %v", owner.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if customers == nil {
			customers = []domain.Customer{}
		}
		c.JSON(http.StatusOK, gin.H{"customers": customers})
	}
}

func getCustomerHandler(svc LedgerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := ownerFrom(c)
		detail, err := svc.GetCustomer(c.Request.Context(), owner.ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			logger.Printf("get customer owner=%s: %v", owner.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": toCustomerDetail(owner, detail)})
	}
}

func listTransactionsHandler(svc LedgerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := ownerFrom(c)
		txs, err := svc.RecentTransactions(c.Request.Context(), owner.ID)
		if err != nil {
			logger.Printf("list transactions owner=%s: %v", owner.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if txs == nil {
			txs = []domain.Transaction{}
		}
		c.JSON(http.StatusOK, gin.H{"transactions": txs})
	}
}

type createTransactionRequest struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	Notes        string          `json:"notes"`
}

func createTransactionHandler(svc LedgerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		owner := ownerFrom(c)
		tx, customer, err := svc.Record(c.Request.Context(), owner.ID, ledgersvc.RecordInput{
			CustomerID:   req.CustomerID,
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Amount:       req.Amount,
			Kind:         domain.TransactionKind(req.Type),
			Notes:        req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ledgersvc.ErrAmountNotPositive),
				errors.Is(err, ledgersvc.ErrInvalidKind),
				errors.Is(err, ledgersvc.ErrCustomerRequired),
				errors.Is(err, ledgersvc.ErrAmbiguousCustomer):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			default:
				logger.Printf("create transaction owner=%s: %v", owner.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.JSON(http.StatusCreated, createTransactionResponse{
			Transaction: *tx,
			Customer:    *customer,
			Message:     "Transaction created successfully",
		})
	}
}

func dashboardHandler(svc LedgerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := ownerFrom(c)
		stats, accounts, err := svc.Dashboard(c.Request.Context(), owner.ID)
		if err != nil {
			logger.Printf("dashboard owner=%s: %v", owner.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if accounts == nil {
			accounts = []domain.CustomerAccount{}
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats, "customers": accounts})
	}
}

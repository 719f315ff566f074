package dto

import "github.com/shopspring/decimal"

// ConvertParams converts a single amount between currencies.
type ConvertParams struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"required,len=3"`
	To     string          `form:"to" binding:"required,len=3"`
}

// BatchConversionItem is one amount+currency pair in a batch conversion.
type BatchConversionItem struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
}

// ConvertBatchRequest converts several amounts to one target currency.
type ConvertBatchRequest struct {
	Transactions []BatchConversionItem `json:"transactions" binding:"required,min=1,dive"`
	To           string                `json:"to" binding:"required,len=3"`
}

// ListParams are generic limit/offset parameters for paged listings.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

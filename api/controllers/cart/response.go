package cart

import (
	cartsvc "github.com/minjaeyoo/shopcore-backend/internal/cart"
	"github.com/minjaeyoo/shopcore-backend/internal/loyalty"
	"github.com/minjaeyoo/shopcore-backend/internal/pricing"
)

type LineResponse struct {
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	Quantity          int    `json:"quantity"`
	UnitPrice         int64  `json:"unitPrice"`
	OriginalUnitPrice int64  `json:"originalUnitPrice"`
	SaleStatus        string `json:"saleStatus"`
	LineTotal         int64  `json:"lineTotal"`
}

type CartResponse struct {
	Lines           []LineResponse `json:"lines"`
	TotalQuantity   int            `json:"totalQuantity"`
	OriginalTotal   int64          `json:"originalTotal"`
	DiscountedTotal int64          `json:"discountedTotal"`
	Empty           bool           `json:"empty"`
}

type PricingResponse struct {
	OriginalTotal  int64   `json:"originalTotal"`
	DiscountRate   float64 `json:"discountRate"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
	TotalQuantity  int     `json:"totalQuantity"`
}

type LoyaltyResponse struct {
	Points  int64    `json:"points"`
	Details []string `json:"details"`
}

func newCartResponse(lines []cartsvc.Line) CartResponse {
	resp := CartResponse{
		Lines: make([]LineResponse, 0, len(lines)),
		Empty: len(lines) == 0,
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, LineResponse{
			ProductID:         line.ProductID,
			ProductName:       line.ProductName,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice,
			OriginalUnitPrice: line.OriginalUnitPrice,
			SaleStatus:        string(line.SaleStatus),
			LineTotal:         line.Total(),
		})
		resp.TotalQuantity += line.Quantity
		resp.OriginalTotal += line.OriginalTotal()
		resp.DiscountedTotal += line.Total()
	}
	return resp
}

func newPricingResponse(res pricing.Result) PricingResponse {
	return PricingResponse{
		OriginalTotal:  res.OriginalTotal,
		DiscountRate:   res.DiscountRate.InexactFloat64(),
		DiscountAmount: res.DiscountAmount.InexactFloat64(),
		FinalPrice:     res.FinalPrice.InexactFloat64(),
		TotalQuantity:  res.TotalQuantity,
	}
}

func newLoyaltyResponse(res loyalty.Result) LoyaltyResponse {
	details := res.Details
	if details == nil {
		details = []string{}
	}
	return LoyaltyResponse{Points: res.Points, Details: details}
}

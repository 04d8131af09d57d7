package handler

import (
	"github.com/cloud-inquiry-balance-web/internal/presentation"
)

// InquiryRequest represents the request body of the JSON inquiry endpoints
type InquiryRequest struct {
	Account string `json:"account"`
}

// PageData is what the inquiry screen template renders
type PageData struct {
	Theme               string
	Themes              []string
	Input               string
	View                *presentation.InquiryView
	Error               *presentation.ErrorView
	CustomerUnavailable string
}

package dto

import "file-shop-demo/internal/model"

type FileListResponse struct {
	Items []*model.CatalogNode `json:"items"`
	// set when the catalog source was unreachable and the listing degraded
	CatalogUnavailable bool `json:"catalog_unavailable,omitempty"`
}

type SelectFileResponse struct {
	Purchased   bool   `json:"purchased"`
	DownloadURL string `json:"download_url,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	State       string `json:"state,omitempty"`
	Price       int    `json:"price,omitempty"`
}

type PaymentSessionResponse struct {
	SessionID     string `json:"session_id"`
	FileID        int    `json:"file_id"`
	Price         int    `json:"price"`
	State         string `json:"state"`
	DownloadURL   string `json:"download_url,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

type PurchaseListResponse struct {
	Purchases []*model.PurchaseRecord `json:"purchases"`
}

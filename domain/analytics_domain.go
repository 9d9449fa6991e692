package domain

import (
	"time"
)

var (
	MessageSuccessGetWasteReport = "waste report retrieved successfully"
	MessageSuccessSaveSnapshot   = "analytics snapshot saved successfully"
	MessageSuccessGetSnapshots   = "analytics snapshots retrieved successfully"

	MessageFailedGetWasteReport = "failed to retrieve waste report"
	MessageFailedSaveSnapshot   = "failed to save analytics snapshot"
	MessageFailedGetSnapshots   = "failed to retrieve analytics snapshots"
)

type (
	CategoryWasteStats struct {
		Total    int `json:"total"`
		Consumed int `json:"consumed"`
		Wasted   int `json:"wasted"`
	}

	WasteReportResponse struct {
		TotalItems      int                           `json:"total_items"`
		ConsumedItems   int                           `json:"consumed_items"`
		WastedItems     int                           `json:"wasted_items"`
		WastePercentage float64                       `json:"waste_percentage"`
		TotalValue      float64                       `json:"total_value"`
		WastedValue     float64                       `json:"wasted_value"`
		Categories      map[string]CategoryWasteStats `json:"categories"`
	}

	AnalyticsSnapshotResponse struct {
		ID              string                        `json:"id"`
		Date            time.Time                     `json:"date"`
		TotalItems      int                           `json:"total_items"`
		ConsumedItems   int                           `json:"consumed_items"`
		WastedItems     int                           `json:"wasted_items"`
		WastePercentage float64                       `json:"waste_percentage"`
		TotalValue      float64                       `json:"total_value"`
		WastedValue     float64                       `json:"wasted_value"`
		Categories      map[string]CategoryWasteStats `json:"categories"`
	}
)

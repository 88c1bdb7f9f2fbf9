package dto

import (
	"time"

	"crypto-spot-service/internal/domain/entities"
)

// AssetMapper converts domain entities into transport DTOs
type AssetMapper struct{}

func NewAssetMapper() *AssetMapper {
	return &AssetMapper{}
}

// ToAssetData maps a single priced asset
func (m *AssetMapper) ToAssetData(asset *entities.Asset) AssetData {
	return AssetData{
		ID:       asset.ID,
		Symbol:   asset.Symbol,
		Name:     asset.Name,
		PriceUSD: asset.PriceUSD,
		PriceBTC: asset.PriceBTC,
		Updated:  asset.FetchedAt.UnixMilli(),
	}
}

// ToGetAssetsResponse maps the full asset list. A zero lastRefresh is
// omitted from the body.
func (m *AssetMapper) ToGetAssetsResponse(assets []*entities.Asset, lastRefresh time.Time) *GetAssetsResponse {
	data := make([]AssetData, len(assets))
	for i, asset := range assets {
		data[i] = m.ToAssetData(asset)
	}

	response := &GetAssetsResponse{
		Assets: data,
		Count:  len(data),
	}
	if !lastRefresh.IsZero() {
		response.LastRefresh = lastRefresh.UnixMilli()
	}
	return response
}

// ToDiagnosticsResponse maps a probe result
func (m *AssetMapper) ToDiagnosticsResponse(result *entities.ProbeResult) *DiagnosticsResponse {
	return &DiagnosticsResponse{
		Reachable:  result.Reachable,
		StatusCode: result.StatusCode,
		LatencyMS:  result.LatencyMS,
		CheckedAt:  result.CheckedAt.UnixMilli(),
		Error:      result.Error,
	}
}

// ToCardOrderResponse maps a stored card ordering
func (m *AssetMapper) ToCardOrderResponse(order *entities.CardOrder) *CardOrderResponse {
	return &CardOrderResponse{
		IDs:       order.IDs,
		Timestamp: order.Timestamp,
	}
}

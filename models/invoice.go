package models

// Invoice is a projection of the current cart; it is recomputed on every
// relevant state change and never stored on its own. The convenience fee is
// 1% of the subtotal, kept unrounded so repeated recomputation cannot drift.
type Invoice struct {
	Subtotal       float64 `json:"subtotal"`
	ConvenienceFee float64 `json:"convenienceFee"`
	FinalTotal     float64 `json:"finalTotal"`
}

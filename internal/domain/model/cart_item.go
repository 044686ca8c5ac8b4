package model

// CartItem はカートの1行。クライアント側で保持され、チェックアウト時に
// そのまま送られてくる。IDが重複の判定キー。
type CartItem struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Price     int64  `json:"price"`
	Subject   string `json:"subject"`
	Board     string `json:"board"`
	Level     string `json:"level"`
	Type      string `json:"type"`
	YearRange string `json:"yearRange"`
	Component string `json:"component"`
}

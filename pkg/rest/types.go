// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// BargainRequest Цена, введённая пользователем, как есть
type BargainRequest struct {
	Price string `json:"price" validate:"max=64"`
}

// BargainResponse Таблица рекомендаций
type BargainResponse struct {
	Price           float64          `json:"price"`
	FeeRate         float64          `json:"feeRate"`
	FeePercent      float64          `json:"feePercent"`
	State           InputState       `json:"state"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation Строка таблицы
type Recommendation struct {
	TargetProfit          float64          `json:"targetProfit"`
	MaxOfferPrice         float64          `json:"maxOfferPrice"`
	MaxOfferPriceText     string           `json:"maxOfferPriceText"`
	PercentOfOriginal     float64          `json:"percentOfOriginal"`
	PercentOfOriginalText string           `json:"percentOfOriginalText"`
	AcceptanceChance      AcceptanceChance `json:"acceptanceChance"`
	Band                  Band             `json:"band"`
}

// CalculatorConfig Параметры калькулятора
type CalculatorConfig struct {
	FeeRate         float64   `json:"feeRate"`
	TargetProfits   []float64 `json:"targetProfits"`
	HighThreshold   float64   `json:"highThreshold"`
	MediumThreshold float64   `json:"mediumThreshold"`
}

// InputState Состояние ввода: empty, invalid, ready
type InputState string

// AcceptanceChance Шанс принятия предложения: High, Medium, Low
type AcceptanceChance string

// Band Цветовая полоса строки: green, yellow, red
type Band string

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор трассировки запроса
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string

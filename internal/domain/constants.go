package domain

// Игровое поле
const (
	DefaultTileCount  = 30 // 600px / 20px на клиенте
	DefaultMaxFood    = 5
	DefaultMaxPlayers = 16
)

// Цвета по умолчанию: первый игрок в комнате - ярко-зеленый,
// остальные - темно-зеленый
const (
	ColorPrimary   = "#00FF00"
	ColorSecondary = "#006400"
	ShapeDefault   = "square"
)

// Длительность эффектов еды в тиках
const (
	SpeedBoostTicks = 30
	InvincibleTicks = 50
)

// Очки за съеденную еду
const (
	ScoreNormal           = 1
	ScoreDouble           = 2
	DefaultSpeedFoodScore = 3 // настраивается через engine.Config
)

// Веса спавна еды (сумма = 100)
const (
	WeightNormal     = 70
	WeightDouble     = 10
	WeightSpeed      = 10
	WeightInvincible = 10
)

// Ограничения на имя аккаунта
const MaxUsernameLen = 16

// Цены магазина
const (
	PriceBasic   = 10
	PricePremium = 50
)

// ColorPrices - прайс на цвета. Идентификаторы для сервера непрозрачны:
// как их рисовать ("gradient", "breathing") решает клиент.
var ColorPrices = map[string]int{
	"#FF0000":   PriceBasic,
	"#0000FF":   PriceBasic,
	"#FFFF00":   PriceBasic,
	"#FF00FF":   PriceBasic,
	"#00FFFF":   PriceBasic,
	"gradient":  PricePremium,
	"breathing": PricePremium,
}

// ShapePrices - прайс на формы сегментов
var ShapePrices = map[string]int{
	"circle":   PriceBasic,
	"triangle": PriceBasic,
	"star":     PricePremium,
}

package partner

// PriceList is the YAML document a partner publishes at a URL.
type PriceList struct {
	Shop       string              `yaml:"shop"`
	Categories []PriceListCategory `yaml:"categories"`
	Goods      []PriceListGood     `yaml:"goods"`
}

type PriceListCategory struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type PriceListGood struct {
	ID         int            `yaml:"id"`
	Category   int            `yaml:"category"`
	Model      string         `yaml:"model"`
	Name       string         `yaml:"name"`
	Price      float64        `yaml:"price"`
	PriceRRC   float64        `yaml:"price_rrc"`
	Quantity   int            `yaml:"quantity"`
	Parameters map[string]any `yaml:"parameters"`
}

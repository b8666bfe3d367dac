package models

// BusinessInfo holds the storefront's public contact details
type BusinessInfo struct {
	Name        string `bson:"name" json:"name"`
	Tagline     string `bson:"tagline" json:"tagline"`
	Description string `bson:"description" json:"description"`
	Phone       string `bson:"phone" json:"phone"`
	Email       string `bson:"email" json:"email"`
	Address     string `bson:"address" json:"address"`
}

// BusinessHours lists opening hours per weekday
type BusinessHours struct {
	Monday    string `bson:"monday" json:"monday"`
	Tuesday   string `bson:"tuesday" json:"tuesday"`
	Wednesday string `bson:"wednesday" json:"wednesday"`
	Thursday  string `bson:"thursday" json:"thursday"`
	Friday    string `bson:"friday" json:"friday"`
	Saturday  string `bson:"saturday" json:"saturday"`
	Sunday    string `bson:"sunday" json:"sunday"`
}

// DeliveryOption describes one way an order can be fulfilled
type DeliveryOption struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Time        string  `bson:"time" json:"time"`
	Icon        string  `bson:"icon" json:"icon"`
}

// BusinessData groups the static reference data stored as a single document
type BusinessData struct {
	BusinessInfo    BusinessInfo     `bson:"business_info" json:"business_info"`
	DeliveryOptions []DeliveryOption `bson:"delivery_options" json:"delivery_options"`
	BusinessHours   BusinessHours    `bson:"business_hours" json:"business_hours"`
}

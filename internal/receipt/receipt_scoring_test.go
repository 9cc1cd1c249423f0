package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoringReceipt() Receipt {
	return Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-02",
		PurchaseTime: "13:01",
		Items:        []ReceiptItem{},
		Total:        "1.01",
	}
}

func TestPoints_RetailerAlphanumeric(t *testing.T) {
	r := scoringReceipt()

	r.Retailer = "Target"
	assert.Equal(t, 6, Points(r))

	r.Retailer = "M&M Corner Market"
	assert.Equal(t, 14, Points(r), "ampersand and spaces earn nothing")

	r.Retailer = "   &&& --- !!!"
	assert.Equal(t, 0, Points(r))
}

func TestPoints_RoundDollarImpliesQuarterMultiple(t *testing.T) {
	r := scoringReceipt()
	r.Retailer = "x" // isolate: 1 baseline point

	r.Total = "35.00"
	assert.Equal(t, 1+50+25, Points(r), "round dollars earn both total bonuses")

	r.Total = "35.25"
	assert.Equal(t, 1+25, Points(r))

	r.Total = "35.10"
	assert.Equal(t, 1, Points(r), "35.10 is not a quarter multiple")

	r.Total = "35.35"
	assert.Equal(t, 1, Points(r))
}

func TestPoints_ItemPairs(t *testing.T) {
	r := scoringReceipt()
	r.Retailer = ""

	// descriptions chosen so the length bonus never fires
	item := ReceiptItem{ShortDescription: "soda", Price: "1.00"}
	for count, want := range map[int]int{0: 0, 1: 0, 2: 5, 3: 5, 4: 10, 7: 15} {
		r.Items = nil
		for i := 0; i < count; i++ {
			r.Items = append(r.Items, item)
		}
		assert.Equal(t, want, Points(r), "pair bonus for %d items", count)
	}
}

func TestPoints_DescriptionLength(t *testing.T) {
	r := scoringReceipt()
	r.Retailer = ""

	// trimmed length 18, multiple of 3: ceil(12.25 * 0.2) = 3
	r.Items = []ReceiptItem{{ShortDescription: "Emils Cheese Pizza", Price: "12.25"}}
	assert.Equal(t, 3, Points(r))

	// surrounding whitespace is trimmed before measuring
	r.Items = []ReceiptItem{{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"}}
	assert.Equal(t, 3, Points(r))

	// length 8, not a multiple of 3
	r.Items = []ReceiptItem{{ShortDescription: "Gatorade", Price: "2.25"}}
	assert.Equal(t, 0, Points(r))

	// whitespace-only descriptions trim to length 0 and earn nothing
	r.Items = []ReceiptItem{{ShortDescription: "   ", Price: "99.99"}}
	assert.Equal(t, 0, Points(r))
}

func TestPoints_OddDay(t *testing.T) {
	r := scoringReceipt()
	r.Retailer = ""

	r.PurchaseDate = "2022-01-01"
	assert.Equal(t, 6, Points(r))

	r.PurchaseDate = "2022-01-02"
	assert.Equal(t, 0, Points(r))

	r.PurchaseDate = "2022-03-31"
	assert.Equal(t, 6, Points(r))
}

func TestPoints_AfternoonWindow(t *testing.T) {
	r := scoringReceipt()
	r.Retailer = ""

	cases := map[string]int{
		"13:59": 0,
		"14:00": 0, // boundary excluded
		"14:01": 10,
		"15:00": 10,
		"15:59": 10,
		"16:00": 0, // boundary excluded
		"16:01": 0,
	}
	for at, want := range cases {
		r.PurchaseTime = at
		assert.Equal(t, want, Points(r), "purchase at %s", at)
	}
}

func TestPoints_TargetExample(t *testing.T) {
	r := Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items: []ReceiptItem{
			{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
			{ShortDescription: "Emils Cheese Pizza", Price: "12.25"},
			{ShortDescription: "Knorr Creamy Chicken", Price: "1.26"},
			{ShortDescription: "Doritos Nacho Cheese", Price: "3.35"},
			{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"},
		},
		Total: "35.35",
	}

	assert.Equal(t, 28, Points(r))
}

func TestPoints_CornerMarketExample(t *testing.T) {
	gatorade := ReceiptItem{ShortDescription: "Gatorade", Price: "2.25"}
	r := Receipt{
		Retailer:     "M&M Corner Market",
		PurchaseDate: "2022-03-20",
		PurchaseTime: "14:33",
		Items:        []ReceiptItem{gatorade, gatorade, gatorade, gatorade},
		Total:        "9.00",
	}

	assert.Equal(t, 109, Points(r))
}

func TestPoints_Deterministic(t *testing.T) {
	r := scoringReceipt()
	r.Items = []ReceiptItem{{ShortDescription: "abc", Price: "0.99"}}

	first := Points(r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Points(r))
	}
	assert.GreaterOrEqual(t, first, 0)
}

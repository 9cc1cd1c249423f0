package receipt

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Points - calculates reward points for a validated receipt based on the
// following criteria:
// 1. Retailer Name:
//   - +1 point for every alphanumeric character in the retailer name.
//
// 2. Total Amount:
//   - +50 points if the total is a round dollar amount with no cents.
//   - +25 points if the total is a multiple of 0.25.
//
// 3. Receipt Items:
//   - +5 points for every two items on the receipt.
//   - If the trimmed length of an item's description is a multiple of 3:
//     multiply the item price by 0.2, round up to the nearest integer, and
//     add the result as points.
//
// 4. Purchase Date & Time:
//   - +6 points if the day of the purchase date is odd.
//   - +10 points if the purchase time is after 2:00 PM and before 4:00 PM.
//
// The function is pure: same receipt in, same points out, no side effects.
// Money rules run on integer cents so a total like "35.10" is never subject
// to binary floating-point rounding.
func Points(r Receipt) int {
	var points int

	for _, char := range r.Retailer {
		if unicode.IsLetter(char) || unicode.IsDigit(char) {
			points++
		}
	}

	if cents, ok := toCents(r.Total); ok {
		if cents%100 == 0 {
			points += 50
		}
		if cents%25 == 0 {
			points += 25
		}
	}

	points += (len(r.Items) / 2) * 5

	for _, item := range r.Items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if len(trimmed) == 0 || len(trimmed)%3 != 0 {
			continue
		}
		if price, err := decimal.NewFromString(item.Price); err == nil {
			points += int(price.Mul(decimal.NewFromFloat(0.2)).Ceil().IntPart())
		}
	}

	if purchaseDate, err := time.Parse(dateLayout, r.PurchaseDate); err == nil {
		if purchaseDate.Day()%2 != 0 {
			points += 6
		}
	}

	if purchaseTime, err := time.Parse(timeLayout, r.PurchaseTime); err == nil {
		if isBetweenTwoAndFour(purchaseTime) {
			points += 10
		}
	}

	return points
}

// isBetweenTwoAndFour - returns true strictly between 14:00 and 16:00;
// exactly 14:00 or 16:00 do not qualify.
func isBetweenTwoAndFour(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	return minutes > 14*60 && minutes < 16*60
}

// toCents converts a validated XX.XX money string to integer cents.
func toCents(value string) (int64, bool) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, false
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart(), true
}

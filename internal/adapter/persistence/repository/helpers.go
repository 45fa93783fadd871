package repository

import (
	"os"
	"strconv"
	"time"

	"mecstock/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// addressItem is the nested shape shared by the customer and service order
// tables.
type addressItem struct {
	CEP        string `dynamodbav:"cep"`
	Street     string `dynamodbav:"street"`
	District   string `dynamodbav:"district"`
	Number     string `dynamodbav:"number"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state"`
	Complement string `dynamodbav:"complement,omitempty"`
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		CEP:        a.CEP,
		Street:     a.Street,
		District:   a.District,
		Number:     a.Number,
		City:       a.City,
		State:      a.State,
		Complement: a.Complement,
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		CEP:        it.CEP,
		Street:     it.Street,
		District:   it.District,
		Number:     it.Number,
		City:       it.City,
		State:      it.State,
		Complement: it.Complement,
	}
}

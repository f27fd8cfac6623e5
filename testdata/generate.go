package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Phone mirrors the columns of phones.csv.
type Phone struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

func main() {
	phones := []Phone{
		{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
		{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
		{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
		{Name: "poco x5 pro", Brand: "xiaomi", Price: 299, Rating: 4.4},
	}

	file, err := os.Create("phones.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Phone](file)
	defer writer.Close()

	if _, err := writer.Write(phones); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated phones.parquet with 4 phones")
}

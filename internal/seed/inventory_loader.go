package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"

	"medstock/m/internal/inventory"
)

// LoadInventory bootstraps the store from a CSV of name,quantity,expiry_date
// rows. It only runs on a true first start — no previously saved blob and no
// records in memory — so a seed file never overrides real data, including a
// deliberately emptied inventory.
func LoadInventory(store *inventory.Store, csvPath string) {
	if csvPath == "" || !store.FirstRun() || len(store.Records()) > 0 {
		return
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load inventory seed %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read seed header: %v", err)
		return
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read seed row: %v", err)
			continue
		}
		if len(record) < 3 {
			continue
		}
		nd, err := inventory.ParseNewDrug(record[0], record[1], record[2])
		if err != nil {
			log.Printf("skipping seed row %q: %v", record[0], err)
			continue
		}
		store.Add(nd)
		rows++
	}

	if rows > 0 {
		log.Printf("seeded inventory with %d records", rows)
	}
}

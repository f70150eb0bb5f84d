package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Order is one row of the orders table. Reference data, never mutated.
// Cancellation is tracked in session state, not by rewriting Status.
type Order struct {
	OrderID      int
	ProductName  string
	Status       string
	DeliveryDate string
}

// Product is one row of the products table.
type Product struct {
	Name           string
	AvailableSizes string
	StockStatus    string
}

// FAQ is one question/answer pair from the FAQ table.
type FAQ struct {
	Question string
	Answer   string
}

// Catalog bundles the three read-only reference tables the support
// responder consults.
type Catalog struct {
	orders   map[int]Order
	products []Product
	faqs     []FAQ
}

// New builds a catalog from in-memory tables.
func New(orders []Order, products []Product, faqs []FAQ) *Catalog {
	byID := make(map[int]Order, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}
	return &Catalog{orders: byID, products: products, faqs: faqs}
}

// Load reads all three reference tables from CSV files.
func Load(ordersPath, productsPath, faqPath string) (*Catalog, error) {
	orders, err := LoadOrders(ordersPath)
	if err != nil {
		return nil, fmt.Errorf("loading orders: %w", err)
	}

	products, err := LoadProducts(productsPath)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	faqs, err := LoadFAQ(faqPath)
	if err != nil {
		return nil, fmt.Errorf("loading faq: %w", err)
	}

	return New(orders, products, faqs), nil
}

// Order looks up an order by id.
func (c *Catalog) Order(id int) (Order, bool) {
	o, ok := c.orders[id]
	return o, ok
}

// Products returns the product table.
func (c *Catalog) Products() []Product {
	return c.products
}

// FAQs returns the FAQ table.
func (c *Catalog) FAQs() []FAQ {
	return c.faqs
}

// LoadOrders reads the orders CSV. The first row is a header.
// Expected columns: order_id, product_name, status, delivery_date.
func LoadOrders(path string) ([]Order, error) {
	rows, err := readCSV(path, 4)
	if err != nil {
		return nil, err
	}

	orders := make([]Order, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid order id %q", path, i+2, row[0])
		}
		orders = append(orders, Order{
			OrderID:      id,
			ProductName:  strings.TrimSpace(row[1]),
			Status:       strings.TrimSpace(row[2]),
			DeliveryDate: strings.TrimSpace(row[3]),
		})
	}
	return orders, nil
}

// LoadProducts reads the products CSV. The first row is a header.
// Expected columns: product_name, available_sizes, stock_status.
func LoadProducts(path string) ([]Product, error) {
	rows, err := readCSV(path, 3)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, Product{
			Name:           strings.TrimSpace(row[0]),
			AvailableSizes: strings.TrimSpace(row[1]),
			StockStatus:    strings.TrimSpace(row[2]),
		})
	}
	return products, nil
}

// LoadFAQ reads the FAQ CSV. The first row is a header.
// Expected columns: question, answer.
func LoadFAQ(path string) ([]FAQ, error) {
	rows, err := readCSV(path, 2)
	if err != nil {
		return nil, err
	}

	faqs := make([]FAQ, 0, len(rows))
	for _, row := range rows {
		faqs = append(faqs, FAQ{
			Question: strings.TrimSpace(row[0]),
			Answer:   strings.TrimSpace(row[1]),
		})
	}
	return faqs, nil
}

// readCSV reads a CSV file, strips the header row, and verifies each
// record has at least minFields columns.
func readCSV(path string, minFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	rows := records[1:]
	for i, row := range rows {
		if len(row) < minFields {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", path, i+2, minFields, len(row))
		}
	}
	return rows, nil
}

// Package cli is the interactive menu over the inventory service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/dto"
	"github.com/rafaelleal24/inventory/internal/core/service"
)

type Shell struct {
	inventoryService *service.InventoryService
	in               *bufio.Scanner
	out              io.Writer
}

func NewShell(inventoryService *service.InventoryService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		inventoryService: inventoryService,
		in:               bufio.NewScanner(in),
		out:              out,
	}
}

// Run loops over the menu until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()
		choice, ok := s.prompt("Enter choice: ")
		if !ok {
			return nil
		}

		if choice == "0" {
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if err := s.dispatch(ctx, choice); err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\n--- Inventory Management ---")
	fmt.Fprintln(s.out, "1. Add Product")
	fmt.Fprintln(s.out, "2. Sell Product")
	fmt.Fprintln(s.out, "3. Restock Product")
	fmt.Fprintln(s.out, "4. List All Products")
	fmt.Fprintln(s.out, "5. Search by Name")
	fmt.Fprintln(s.out, "6. Search by Type")
	fmt.Fprintln(s.out, "7. Remove Expired Groceries")
	fmt.Fprintln(s.out, "8. Show Total Inventory Value")
	fmt.Fprintln(s.out, "9. Save Inventory")
	fmt.Fprintln(s.out, "10. Load Inventory")
	fmt.Fprintln(s.out, "0. Exit")
}

func (s *Shell) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return s.addProduct(ctx)
	case "2":
		return s.sellProduct(ctx)
	case "3":
		return s.restockProduct(ctx)
	case "4":
		s.printProducts(s.inventoryService.ListAll(ctx))
	case "5":
		name, ok := s.prompt("Search name: ")
		if !ok {
			return nil
		}
		s.printProducts(s.inventoryService.SearchByName(ctx, name))
	case "6":
		return s.searchByKind(ctx)
	case "7":
		s.inventoryService.SweepExpired(ctx)
		fmt.Fprintln(s.out, "Expired groceries removed.")
	case "8":
		total := s.inventoryService.TotalValue(ctx)
		fmt.Fprintf(s.out, "Total Inventory Value: $%.2f\n", total.Dollars())
	case "9":
		file, ok := s.prompt("Filename to save: ")
		if !ok {
			return nil
		}
		if err := s.inventoryService.Save(ctx, file); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Saved.")
	case "10":
		file, ok := s.prompt("Filename to load: ")
		if !ok {
			return nil
		}
		if err := s.inventoryService.Load(ctx, file); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Loaded.")
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
	return nil
}

func (s *Shell) addProduct(ctx context.Context) error {
	kind, ok := s.prompt("Product type (electronics/grocery/clothing): ")
	if !ok {
		return nil
	}
	if _, err := domain.ParseKind(kind); err != nil {
		fmt.Fprintln(s.out, "Invalid type.")
		return nil
	}

	request := dto.AddProductRequest{Kind: kind}
	if request.ProductID, ok = s.prompt("Product ID: "); !ok {
		return nil
	}
	if request.Name, ok = s.prompt("Name: "); !ok {
		return nil
	}

	price, ok, err := s.promptFloat("Price: ")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	request.Price = price

	stock, ok, err := s.promptInt("Quantity in stock: ")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	request.Stock = stock

	switch kind, _ := domain.ParseKind(request.Kind); kind {
	case domain.KindElectronics:
		if request.Brand, ok = s.prompt("Brand: "); !ok {
			return nil
		}
		warranty, ok, err := s.promptInt("Warranty (years): ")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		request.WarrantyYears = warranty
	case domain.KindGrocery:
		if request.ExpiryDate, ok = s.prompt("Expiry date (YYYY-MM-DD): "); !ok {
			return nil
		}
	case domain.KindClothing:
		if request.Size, ok = s.prompt("Size: "); !ok {
			return nil
		}
		if request.Material, ok = s.prompt("Material: "); !ok {
			return nil
		}
	}

	if _, err := s.inventoryService.AddProduct(ctx, &request, ""); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Product added successfully.")
	return nil
}

func (s *Shell) sellProduct(ctx context.Context) error {
	id, ok := s.prompt("Product ID: ")
	if !ok {
		return nil
	}
	quantity, ok, err := s.promptInt("Quantity to sell: ")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := s.inventoryService.Sell(ctx, id, quantity); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Sold successfully.")
	return nil
}

func (s *Shell) restockProduct(ctx context.Context) error {
	id, ok := s.prompt("Product ID: ")
	if !ok {
		return nil
	}
	quantity, ok, err := s.promptInt("Quantity to restock: ")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := s.inventoryService.Restock(ctx, id, quantity); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Restocked successfully.")
	return nil
}

func (s *Shell) searchByKind(ctx context.Context) error {
	input, ok := s.prompt("Type to search (electronics/grocery/clothing): ")
	if !ok {
		return nil
	}
	kind, err := domain.ParseKind(input)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid type.")
		return nil
	}
	s.printProducts(s.inventoryService.SearchByKind(ctx, kind))
	return nil
}

func (s *Shell) printProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID() < products[j].ID() })
	for _, product := range products {
		fmt.Fprintln(s.out, product.Describe())
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) promptInt(label string) (int, bool, error) {
	text, ok := s.prompt(label)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", text)
	}
	return value, true, nil
}

func (s *Shell) promptFloat(label string) (float64, bool, error) {
	text, ok := s.prompt(label)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", text)
	}
	return value, true, nil
}

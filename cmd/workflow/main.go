package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/infrastructure/logger"
	"github.com/lglucin/didero-takehome/internal/workflow"
)

const usage = `usage: workflow [-server URL] <command>

commands:
  list                                     list all orders
  view <id>                                show one order
  suppliers                                list suppliers
  items <supplierId>                       list a supplier's items
  create <supplierId> <itemId> <quantity>  create a draft order
  status <id> <newStatus>                  change an order's status
  delete <id>                              delete an order
`

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the order service")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	zapLogger, err := logger.New("warn")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client := workflow.NewClient(*serverURL, zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, client, args); err != nil {
		// Every failure surfaces as a message; the view never crashes.
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *workflow.Client, args []string) error {
	switch args[0] {
	case "list":
		orders, err := client.ListOrders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders available.")
			return nil
		}
		for _, order := range orders {
			supplierName := ""
			if order.Supplier != nil {
				supplierName = order.Supplier.Name
			}
			fmt.Printf("%d\t%s\t%s\t%s\n", order.ID, order.PONumber, supplierName, order.OrderStatus)
		}
		return nil

	case "view":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		order, err := client.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			fmt.Printf("No order with id %d.\n", id)
			return nil
		}
		printOrder(order)
		return nil

	case "suppliers":
		suppliers, err := client.ListSuppliers(ctx)
		if err != nil {
			return err
		}
		for _, s := range suppliers {
			fmt.Printf("%d\t%s\n", s.ID, s.Name)
		}
		return nil

	case "items":
		supplierID, err := parseID(args, 1)
		if err != nil {
			return err
		}
		items, err := client.ListSupplierItems(ctx, supplierID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No items available.")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%d\t%s\t%s %.2f\n", item.ID, item.ItemName, item.PriceCurrency, item.Price)
		}
		return nil

	case "create":
		if len(args) < 4 {
			return fmt.Errorf("create needs <supplierId> <itemId> <quantity>")
		}
		supplierID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier id %q", args[1])
		}
		itemID, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[2])
		}
		quantity, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[3])
		}
		return create(ctx, client, supplierID, itemID, quantity)

	case "status":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return fmt.Errorf("status needs <id> <newStatus>")
		}
		status, err := domain.ParseOrderStatus(args[2])
		if err != nil {
			return err
		}
		order, err := client.ChangeStatus(ctx, id, status)
		if err != nil {
			return err
		}
		fmt.Printf("Order %d is now %s.\n", order.ID, order.OrderStatus)
		return nil

	case "delete":
		id, err := parseID(args, 1)
		if err != nil {
			return err
		}
		removed, err := client.DeleteOrder(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted order %d (%s).\n", removed.ID, removed.PONumber)
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// create walks the same selection flow the form does: resolve the
// supplier, resolve the item from that supplier's catalog, then build
// and submit.
func create(ctx context.Context, client *workflow.Client, supplierID, itemID int64, quantity int) error {
	suppliers, err := client.ListSuppliers(ctx)
	if err != nil {
		return err
	}

	form := workflow.NewOrderForm()
	for i := range suppliers {
		if suppliers[i].ID == supplierID {
			form.SelectSupplier(&suppliers[i])
			break
		}
	}

	if form.Supplier != nil {
		items, err := client.ListSupplierItems(ctx, supplierID)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID == itemID {
				form.SelectItem(&items[i])
				break
			}
		}
	}

	form.Quantity = quantity
	form.PlacedByID = 1
	form.ShippingAddressLine1 = "123 Fake Street"
	form.InternalNotes = "New Purchase Order"
	form.VendorNotes = "New Purchase Order"

	created, err := form.Submit(ctx, client)
	if err != nil {
		return err
	}

	fmt.Printf("Created order %d (%s).\n", created.ID, created.PONumber)
	return nil
}

func parseID(args []string, pos int) (int64, error) {
	if len(args) <= pos {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseInt(args[pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[pos])
	}
	return id, nil
}

func printOrder(order *domain.PurchaseOrder) {
	fmt.Printf("PO Number: %s\n", order.PONumber)
	if order.Supplier != nil {
		fmt.Printf("Supplier: %s\n", order.Supplier.Name)
	}
	fmt.Printf("Status: %s\n", order.OrderStatus)
	fmt.Printf("Placed: %s\n", order.PlacementTime.Format(time.RFC3339))
	if order.RequestedShipDate != nil {
		fmt.Printf("Requested ship date: %s\n", order.RequestedShipDate.Format(time.RFC3339))
	}
	if order.ShippingAddressLine1 != nil {
		fmt.Printf("Shipping address: %s\n", *order.ShippingAddressLine1)
	}
	if order.InternalNotes != nil {
		fmt.Printf("Internal notes: %s\n", *order.InternalNotes)
	}
	if order.VendorNotes != nil {
		fmt.Printf("Vendor notes: %s\n", *order.VendorNotes)
	}
	fmt.Println("Items:")
	for _, li := range order.Items {
		name := ""
		if li.Item != nil {
			name = li.Item.ItemName
		}
		fmt.Printf("  %s - %d x %s %.2f\n", name, li.Quantity, li.PriceCurrency, li.Price)
	}
}

// Package cli drives the interactive menu over an injected reader and writer,
// so a test can script a whole session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/abgdnv/shopmanager/internal/account"
	"github.com/abgdnv/shopmanager/internal/shop"
	"github.com/google/uuid"
)

// Menu is the session controller: it reads commands, invokes one operation per
// command and reports the outcome. No operation error ever terminates the
// session; control always returns to the enclosing loop.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	logger   *slog.Logger
	accounts *account.Service
	shop     *shop.Service
}

// New creates a menu bound to the given input and output streams.
func New(in io.Reader, out io.Writer, logger *slog.Logger, accounts *account.Service, shopSvc *shop.Service) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger.With("component", "cli"),
		accounts: accounts,
		shop:     shopSvc,
	}
}

// Run executes the top-level menu until the user exits, input ends or the
// context is cancelled. It returns nil in all of those cases so the caller
// always proceeds to flush.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the Shopping Management System!")
	for ctx.Err() == nil {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1. Register")
		fmt.Fprintln(m.out, "2. Login")
		fmt.Fprintln(m.out, "3. Exit")
		choice, err := m.promptInt("Enter your choice: ")
		if err != nil {
			return nil
		}
		switch choice {
		case 1:
			if err := m.register(); err != nil {
				return nil
			}
		case 2:
			if err := m.login(ctx); err != nil {
				return nil
			}
		case 3:
			fmt.Fprintln(m.out, "Thank you for using the system!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
	return nil
}

func (m *Menu) register() error {
	id, err := m.promptLine("Enter User ID: ")
	if err != nil {
		return err
	}
	if _, findErr := m.accounts.FindByID(id); findErr == nil {
		fmt.Fprintln(m.out, "User ID already exists. Try a different one.")
		return nil
	}
	name, err := m.promptLine("Enter Name: ")
	if err != nil {
		return err
	}
	password, err := m.promptLine("Enter Password: ")
	if err != nil {
		return err
	}
	role, err := m.promptLine("Enter Role (Admin/Customer): ")
	if err != nil {
		return err
	}

	_, err = m.accounts.Register(account.RegisterDto{
		ID:       id,
		Name:     name,
		Password: password,
		Role:     role,
	})
	switch {
	case errors.Is(err, account.ErrDuplicateID):
		fmt.Fprintln(m.out, "User ID already exists. Try a different one.")
	case errors.Is(err, account.ErrInvalidRole):
		fmt.Fprintln(m.out, "Invalid role. Registration failed.")
	case err != nil:
		fmt.Fprintln(m.out, "Registration failed:", err)
	default:
		fmt.Fprintln(m.out, "Registration successful!")
	}
	return nil
}

func (m *Menu) login(ctx context.Context) error {
	id, err := m.promptLine("Enter User ID: ")
	if err != nil {
		return err
	}
	password, err := m.promptLine("Enter Password: ")
	if err != nil {
		return err
	}

	user, err := m.accounts.Authenticate(id, password)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid credentials. Try again.")
		return nil
	}

	sessionLogger := m.logger.With(
		"session", uuid.NewString(),
		"user", user.ID,
		"role", user.Role)
	sessionLogger.Info("login")

	if user.Role == account.RoleAdmin {
		fmt.Fprintln(m.out, "Admin Login Successful!")
		err = m.adminMenu(ctx)
	} else {
		fmt.Fprintln(m.out, "Customer Login Successful!")
		err = m.customerMenu(ctx, user.ID)
	}
	sessionLogger.Info("logout")
	return err
}

func (m *Menu) adminMenu(ctx context.Context) error {
	for ctx.Err() == nil {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1. Add Product")
		fmt.Fprintln(m.out, "2. View Products")
		fmt.Fprintln(m.out, "3. Logout")
		choice, err := m.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := m.addProduct(); err != nil {
				return err
			}
		case 2:
			m.viewProducts()
		case 3:
			fmt.Fprintln(m.out, "Logged out.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
	return nil
}

func (m *Menu) customerMenu(ctx context.Context, accountID string) error {
	for ctx.Err() == nil {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1. View Products")
		fmt.Fprintln(m.out, "2. Buy Product")
		fmt.Fprintln(m.out, "3. View Purchase History")
		fmt.Fprintln(m.out, "4. Logout")
		choice, err := m.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			m.viewProducts()
		case 2:
			if err := m.buyProduct(accountID); err != nil {
				return err
			}
		case 3:
			m.viewHistory(accountID)
		case 4:
			fmt.Fprintln(m.out, "Logged out.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
	return nil
}

func (m *Menu) addProduct() error {
	name, err := m.promptLine("Enter Product Name: ")
	if err != nil {
		return err
	}
	price, err := m.promptFloat("Enter Product Price: ")
	if err != nil {
		return err
	}
	stock, err := m.promptInt("Enter Product Stock: ")
	if err != nil {
		return err
	}

	if _, err := m.shop.AddProduct(shop.ProductCreateDto{
		Name:  name,
		Price: price,
		Stock: stock,
	}); err != nil {
		fmt.Fprintln(m.out, "Failed to add product:", err)
		return nil
	}
	fmt.Fprintln(m.out, "Product added successfully!")
	return nil
}

func (m *Menu) viewProducts() {
	products := m.shop.Products()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products available.")
		return
	}
	fmt.Fprintln(m.out, "Available Products:")
	for _, p := range products {
		fmt.Fprintf(m.out, "ID: %d, Name: %s, Price: %s, Stock: %d\n",
			p.ID, p.Name, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Stock)
	}
}

func (m *Menu) buyProduct(accountID string) error {
	productID, err := m.promptInt("Enter Product ID: ")
	if err != nil {
		return err
	}
	quantity, err := m.promptInt("Enter Quantity: ")
	if err != nil {
		return err
	}

	receipt, err := m.shop.Buy(shop.PurchaseDto{
		AccountID: accountID,
		ProductID: productID,
		Quantity:  quantity,
	})
	switch {
	case errors.Is(err, shop.ErrInvalidPurchase):
		fmt.Fprintln(m.out, "Invalid product or insufficient stock.")
	case err != nil:
		fmt.Fprintln(m.out, "Purchase failed:", err)
	default:
		fmt.Fprintf(m.out, "Purchase successful! %s x %d, total %s\n",
			receipt.ProductName, receipt.Quantity,
			strconv.FormatFloat(receipt.Total, 'f', -1, 64))
	}
	return nil
}

func (m *Menu) viewHistory(accountID string) {
	history := m.shop.History(accountID)
	if len(history) == 0 {
		fmt.Fprintln(m.out, "No purchase history found.")
		return
	}
	fmt.Fprintln(m.out, "Your Purchase History:")
	for _, item := range history {
		fmt.Fprintln(m.out, item)
	}
}

// promptLine prints the prompt and reads one line. io.EOF means the input
// stream ended and the session should wind down.
func (m *Menu) promptLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptInt re-prompts until the user enters a valid integer.
func (m *Menu) promptInt(prompt string) (int, error) {
	for {
		line, err := m.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}
		return value, nil
	}
}

// promptFloat re-prompts until the user enters a valid number.
func (m *Menu) promptFloat(prompt string) (float64, error) {
	for {
		line, err := m.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}
		return value, nil
	}
}

// internal/services/export_service.go
package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
)

// exportRowLimit caps a single workbook. Far above any realistic catalog,
// it only exists so a runaway query cannot build an unbounded sheet.
const exportRowLimit = 50000

// ExportService renders filtered admin lists as xlsx workbooks. It goes
// through the sibling services so an export always sees exactly the rows
// the list screen shows, filters and search included.
type ExportService struct {
	products   *ProductService
	orders     *OrderService
	users      *UserService
	categories *CategoryService
	blogs      *BlogService
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{
		products:   NewProductService(db),
		orders:     NewOrderService(db),
		users:      NewUserService(db),
		categories: NewCategoryService(db),
		blogs:      NewBlogService(db),
	}
}

func exportParams() (page, limit int) {
	return 1, exportRowLimit
}

func (s *ExportService) ExportProducts(w io.Writer, params ProductSearchParams) error {
	params.Page, params.Limit = exportParams()
	products, _, err := s.products.SearchProducts(params)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	addHeaderRow(sheet,
		"ID", "Name", "Arabic Name", "Category", "Base Price", "Discounted Price",
		"SKU", "Active", "Featured", "Rating", "Reviews", "Variants", "Tags",
		"Images", "Created At")

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.ArabicName)
		row.AddCell().SetString(p.CategoryName)
		row.AddCell().SetFloat(p.BasePrice)
		row.AddCell().SetFloat(p.DiscountedPrice)
		row.AddCell().SetString(p.SKU)
		row.AddCell().SetString(strconv.FormatBool(p.IsActive))
		row.AddCell().SetString(strconv.FormatBool(p.IsFeatured))
		row.AddCell().SetFloat(p.Rating)
		row.AddCell().SetInt64(p.ReviewCount)
		row.AddCell().SetString(variantCell(p.Variants))
		row.AddCell().SetString(listCell(p.Tags))
		row.AddCell().SetString(listCell(p.Images))
		row.AddCell().SetString(formatExportTime(p.CreatedAt))
	}

	return file.Write(w)
}

func (s *ExportService) ExportOrders(w io.Writer, params OrderSearchParams) error {
	params.Page, params.Limit = exportParams()
	orders, _, err := s.orders.SearchOrders(params)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	addHeaderRow(sheet,
		"ID", "Status", "Customer", "Recipient", "Phone", "District",
		"Payment Method", "Total Amount", "Items", "Created At")

	for _, o := range orders {
		customer := ""
		if o.User != nil {
			customer = o.User.Email
		}

		row := sheet.AddRow()
		row.AddCell().SetString(o.ID.String())
		row.AddCell().SetString(string(o.Status))
		row.AddCell().SetString(customer)
		row.AddCell().SetString(o.Address.Name)
		row.AddCell().SetString(o.Address.PhoneNumber)
		row.AddCell().SetString(o.Address.District)
		row.AddCell().SetString(o.PaymentMethod)
		row.AddCell().SetString(o.TotalAmount.StringFixed(2))
		row.AddCell().SetString(orderItemsCell(o.Items))
		row.AddCell().SetString(formatExportTime(o.CreatedAt))
	}

	return file.Write(w)
}

func (s *ExportService) ExportUsers(w io.Writer, params UserSearchParams) error {
	params.Page, params.Limit = exportParams()
	users, _, err := s.users.SearchUsers(params)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Users")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	addHeaderRow(sheet,
		"ID", "Name", "Email", "Role", "Mobile Number", "Sign-in Method",
		"Notifications", "Last Login", "Created At")

	for _, u := range users {
		lastLogin := ""
		if u.LastLoginAt != nil {
			lastLogin = formatExportTime(*u.LastLoginAt)
		}

		row := sheet.AddRow()
		row.AddCell().SetString(u.ID.String())
		row.AddCell().SetString(u.Name)
		row.AddCell().SetString(u.Email)
		row.AddCell().SetString(string(u.Role))
		row.AddCell().SetString(u.MobileNumber)
		row.AddCell().SetString(string(u.SignInMethod))
		row.AddCell().SetString(strconv.FormatBool(u.IsNotificationEnabled))
		row.AddCell().SetString(lastLogin)
		row.AddCell().SetString(formatExportTime(u.CreatedAt))
	}

	return file.Write(w)
}

func (s *ExportService) ExportCategories(w io.Writer, params CategorySearchParams) error {
	params.Page, params.Limit = exportParams()
	categories, _, err := s.categories.SearchCategories(params)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Categories")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	addHeaderRow(sheet, "ID", "Name", "Arabic Name", "Active", "Image URL", "Created At")

	for _, c := range categories {
		row := sheet.AddRow()
		row.AddCell().SetString(c.ID.String())
		row.AddCell().SetString(c.Name)
		row.AddCell().SetString(c.ArabicName)
		row.AddCell().SetString(strconv.FormatBool(c.IsActive))
		row.AddCell().SetString(c.ImageURL)
		row.AddCell().SetString(formatExportTime(c.CreatedAt))
	}

	return file.Write(w)
}

func (s *ExportService) ExportBlogPosts(w io.Writer, params BlogSearchParams) error {
	params.Page, params.Limit = exportParams()
	posts, _, err := s.blogs.SearchBlogPosts(params)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Blog Posts")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	addHeaderRow(sheet, "ID", "Title", "Writer", "Category", "Published At", "Created At")

	for _, p := range posts {
		published := ""
		if p.PublishedAt != nil {
			published = formatExportTime(*p.PublishedAt)
		}

		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Writer)
		row.AddCell().SetString(string(p.Category))
		row.AddCell().SetString(published)
		row.AddCell().SetString(formatExportTime(p.CreatedAt))
	}

	return file.Write(w)
}

// ExportFilename builds the attachment name, e.g. products_20260829.xlsx.
func ExportFilename(entity string) string {
	return fmt.Sprintf("%s_%s.xlsx", entity, time.Now().Format("20060102"))
}

// variantCell flattens a product's variants into one readable cell.
func variantCell(variants []models.ProductVariant) string {
	parts := make([]string, 0, len(variants))
	for _, v := range variants {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", v.Name, v.Price))
	}
	return strings.Join(parts, ", ")
}

// listCell flattens a list-valued field (tags, image URLs) into one cell.
func listCell(values []string) string {
	return strings.Join(values, ", ")
}

func orderItemsCell(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.ProductName
		if item.VariantName != "" {
			name = name + " / " + item.VariantName
		}
		parts = append(parts, fmt.Sprintf("%s x%d", name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func addHeaderRow(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
}

func formatExportTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

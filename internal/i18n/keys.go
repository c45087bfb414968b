// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"
	KeyCategoryInUse    = "category.in_use"

	// Products
	KeyProductCreated        = "product.created"
	KeyProductUpdated        = "product.updated"
	KeyProductDeleted        = "product.deleted"
	KeyProductNotFound       = "product.not_found"
	KeyProductNeedsVariant   = "product.needs_active_variant"
	KeyVariantNotFound       = "variant.not_found"
	KeyVariantLastActiveOne  = "variant.last_active"

	// Orders
	KeyOrderUpdated       = "order.updated"
	KeyOrderNotFound      = "order.not_found"
	KeyOrderInvalidStatus = "order.invalid_status"

	// Users
	KeyUserCreated  = "user.created"
	KeyUserUpdated  = "user.updated"
	KeyUserDeleted  = "user.deleted"
	KeyUserNotFound = "user.not_found"
	KeyUserExists   = "user.exists"

	// Blog posts
	KeyBlogCreated  = "blog.created"
	KeyBlogUpdated  = "blog.updated"
	KeyBlogDeleted  = "blog.deleted"
	KeyBlogNotFound = "blog.not_found"

	// Enquiries
	KeyEnquiryCreated  = "enquiry.created"
	KeyEnquiryDeleted  = "enquiry.deleted"
	KeyEnquiryNotFound = "enquiry.not_found"

	// Reviews
	KeyReviewCreated  = "review.created"
	KeyReviewUpdated  = "review.updated"
	KeyReviewDeleted  = "review.deleted"
	KeyReviewNotFound = "review.not_found"

	// Settings
	KeySettingsUpdated = "settings.updated"

	// Uploads
	KeyFileUploadSuccess = "upload.success"
	KeyFileUploadFailed  = "upload.failed"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)

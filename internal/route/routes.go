package route

import (
	"strings"

	"marketplace-storefront/internal/data/entity"
)

// Rule adalah deklarasi route yang dijaga: wajib login, plus role set
// yang boleh masuk (kosong = cukup login).
type Rule struct {
	Pattern      string
	RequireAuth  bool
	AllowedRoles []entity.Role
}

// Table adalah route table storefront. Route publik (home, login,
// register, browse produk/kategori) tidak masuk sini, tidak dijaga.
func Table() []Rule {
	customer := []entity.Role{entity.RoleCustomer}
	seller := []entity.Role{entity.RoleSeller}
	admin := []entity.Role{entity.RoleAdmin}

	return []Rule{
		// Customer
		{Pattern: "/cart", RequireAuth: true, AllowedRoles: customer},
		{Pattern: "/account", RequireAuth: true, AllowedRoles: customer},
		{Pattern: "/account/orders", RequireAuth: true, AllowedRoles: customer},
		{Pattern: "/account/orders/{id}", RequireAuth: true, AllowedRoles: customer},
		{Pattern: "/account/wishlist", RequireAuth: true, AllowedRoles: customer},

		// Seller
		{Pattern: "/seller", RequireAuth: true, AllowedRoles: seller},
		{Pattern: "/seller/products", RequireAuth: true, AllowedRoles: seller},
		{Pattern: "/seller/products/new", RequireAuth: true, AllowedRoles: seller},
		{Pattern: "/seller/products/{id}/edit", RequireAuth: true, AllowedRoles: seller},
		{Pattern: "/seller/analytics", RequireAuth: true, AllowedRoles: seller},
		{Pattern: "/seller/orders", RequireAuth: true, AllowedRoles: seller},

		// Admin
		{Pattern: "/admin", RequireAuth: true, AllowedRoles: admin},
		{Pattern: "/admin/*", RequireAuth: true, AllowedRoles: admin},
	}
}

// Resolve mencari rule yang match path. Miss berarti route publik.
func Resolve(rules []Rule, path string) (Rule, bool) {
	for _, rule := range rules {
		if matchPattern(rule.Pattern, path) {
			return rule, true
		}
	}
	return Rule{}, false
}

// matchPattern: segment "{...}" match satu segment apa pun, segment
// terakhir "*" match sisa subtree.
func matchPattern(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	ts := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range ps {
		if seg == "*" && i == len(ps)-1 {
			return len(ts) > i
		}
		if i >= len(ts) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if ts[i] == "" {
				return false
			}
			continue
		}
		if seg != ts[i] {
			return false
		}
	}

	return len(ps) == len(ts)
}

// Package catalog models what the marketplace sells: providers, the food
// items they list and the menus they present. Inactive providers are hidden
// from customers; only admins change the flag.
package catalog

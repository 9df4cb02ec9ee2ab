// Package branding centralises user-facing product naming so services and
// templates stay consistent when the brand changes.
package branding

// AppName is the product name shown in page titles, headers, and emails.
const AppName = "Distilling.Works"

// Package gui is the Fyne host glue for langswitch: adapters exposing
// fyne widgets as localizable slots, a registry implementing the slot
// provider, and a demo window with a language selector.
package gui

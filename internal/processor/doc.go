// Package processor contains the command-line actions of langswitch. It
// loads the translation catalog and executes listing, single and batch
// translation, catalog checking and SQLite import/export on behalf of the
// root command.
package processor

// Package enrollment implements the signup pipeline: validate the submitted
// name and email, persist a pending subscriber together with a single-use
// confirmation token in one transaction, then send the confirmation email.
//
// Ordering is fixed: persistence must succeed before notification is
// attempted, so a subscriber is never emailed without a durable, confirmable
// record. If the email fails after a successful insert, the subscriber stays
// pending and the call reports failure.
//
// The service layer contains pure business logic and depends on the
// Repository and Notifier interfaces defined in this package. It never
// imports net/http or database/sql directly.
package enrollment

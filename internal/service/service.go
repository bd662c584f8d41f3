// Package service contains the business logic.
//
// It sits between the handler layer and the outside world.
// It receives validated data from the handler, builds the lead
// summary, and hands notifications to the email dispatcher.
package service

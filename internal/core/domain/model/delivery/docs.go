// Package delivery provides the Service aggregate, the root describing one
// delivery service's coverage and pricing.
//
// Coverage is defined by the service's distance records: a service covers a
// province when at least one of its records names that province as an
// endpoint. The same records classify any covered province pair into a
// distance zone, which is the input of the fee calculation.
package delivery

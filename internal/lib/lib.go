// Packages lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains shared utilities and the outbound email dispatchers
// (Resend, SendGrid).
package lib

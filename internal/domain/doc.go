// Package domain contains the core model for dayoff: calendar dates, the
// holiday set and the working/non-working day decision.
//
// The domain does not read files, clocks or flags. Infra/adapters build a
// HolidaySet and hand dates in; the decision functions here are pure.
package domain

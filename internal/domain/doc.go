// Package domain models the weather and climate-station data this tool
// reports on, independent of any upstream provider's JSON or CSV shape.
//
// # Units
//
// The weather provider is queried with imperial units, so temperatures are
// already °F and wind speeds mph when they arrive. Everything else comes in
// the provider's native metric units and is converted at the display edge:
//
//	pressure     hPa  → mmHg   (× 0.750062), mmHg → inHg (× 0.03937)
//	rain / snow  mm   → inches (× 0.03937008)
//	visibility   m    → miles  (× 0.00062137)
//	elevation    m    → feet   (× 3.2808399)
//	distance          → miles  (× 0.0006213712, station lookup)
//	wind (bulk)  km/h → mph    (× 0.62137119)
//
// The station provider reports everything metric; bulk series records keep
// metric values and the report layer converts.
//
// # Absence vs zero
//
// Upstream payloads omit fields freely: "rain" may be missing, a bare
// number, or an object. Optional values are therefore pointers (or carry an
// explicit Set flag) so that "absent" survives decoding. Formatters
// substitute zero-like defaults when printing, which means a missing wind
// gust still renders as 0.0, but nothing in between the decoder and the
// formatter has to guess.
package domain

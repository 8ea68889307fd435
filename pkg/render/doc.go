// Package render turns layout results into viewable artifacts.
//
// Two formats are supported: SVG for visual inspection of a packed grid and
// JSON for feeding positions back to a host. Rendering is presentation only;
// it never changes positions or heights.
package render

// Package blocklinear converts raster surfaces between the linear
// (tightly packed, row-major) byte layout and the block-linear
// (GOB-tiled) layout read natively by the Tegra X1 texture unit, as
// shipped in the Nintendo Switch.
//
// The package is a pure byte permutation: it never interprets pixel
// data, never touches a file or the network, and holds no state across
// calls. Everything is derived from the Tegra Technical Reference
// Manual's description of the block-linear format (§20.1) and
// cross-checked against Ryujinx's BlockLinearLayout.
//
// SwizzleBlockLinear and DeswizzleBlockLinear operate on a single mip
// level of a single array layer. SwizzleSurface and DeswizzleSurface
// drive the same transform across every mip level of every layer of a
// full surface, inserting the padding the hardware requires between
// mip levels and array layers.
package blocklinear

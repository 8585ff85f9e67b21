// Package feistel implements Simplified DES (S-DES), a two-round Feistel
// block cipher over a single 8-bit block with a 10-bit key.
//
// # Key schedule
//
// The 10-bit key is permuted through P10, split into two 5-bit halves and
// rotated left by one. P8 of the joined halves gives K1. Rotating both
// halves left by two more positions and applying P8 again gives K2.
//
// # Rounds
//
// The block passes through the initial permutation IP and is split into
// halves L and R. Round one mixes fk(R, K1) into L, the halves are swapped,
// round two mixes fk(R, K2) into L, and IP⁻¹ produces the output block.
// Decryption is the same network with K1 and K2 exchanged.
//
// Inputs are strings of '0' and '1'; whitespace is ignored. There is no
// chaining mode: each call processes exactly one block.
package feistel

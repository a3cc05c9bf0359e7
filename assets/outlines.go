package assets

// Glyph outlines in glyph space, y pointing down from the baseline.
const (
	// outlineT draws the letter T.
	outlineT = "M 5.71875 -6.875 L 5.65625 -6.9375 C 4.78125 -6.890625 3.78125 -6.84375 3.046875 -6.84375 C 1.28125 -6.84375 1.28125 -6.921875 0.328125 -6.953125 L 0.265625 -6.875 L 0.265625 -6.40625 L 0.34375 -6.328125 C 1.453125 -6.375 2.234375 -6.40625 2.46875 -6.40625 C 2.515625 -6.40625 2.5625 -6.375 2.5625 -6.34375 C 2.578125 -6.046875 2.578125 -4.609375 2.578125 -3.78125 C 2.578125 -2.515625 2.53125 -1.25 2.453125 0.015625 L 2.546875 0.09375 L 3.53125 -0.171875 C 3.46875 -1.375 3.40625 -3.15625 3.40625 -4.359375 C 3.40625 -5.578125 3.40625 -6.421875 3.53125 -6.421875 C 3.75 -6.421875 3.953125 -6.40625 5.625 -6.3125 L 5.71875 -6.390625 Z M 5.71875 -6.875"
	// outlinePrime draws a prime mark.
	outlinePrime = "M 2.015625 -3.296875 C 2.078125 -3.40625 2.078125 -3.46875 2.078125 -3.515625 C 2.078125 -3.734375 1.890625 -3.890625 1.671875 -3.890625 C 1.40625 -3.890625 1.328125 -3.671875 1.296875 -3.5625 L 0.375 -0.546875 C 0.359375 -0.53125 0.328125 -0.453125 0.328125 -0.4375 C 0.328125 -0.359375 0.546875 -0.28125 0.609375 -0.28125 C 0.65625 -0.28125 0.65625 -0.296875 0.703125 -0.40625 Z M 2.015625 -3.296875"
	// outlineF draws the letter F.
	outlineF = "M 0.59375 -3.03125 L 0.53125 -2.984375 L 0.5 -2.828125 L 0.53125 -2.78125 L 1.421875 -2.78125 L 1.46875 -2.71875 L 1.46875 -1.96875 C 1.46875 -1.34375 1.421875 -0.6875 1.359375 0 L 1.5 0.078125 L 2.125 -0.078125 C 2.0625 -0.640625 2.046875 -1.3125 2.046875 -1.96875 L 2.046875 -2.734375 L 2.09375 -2.78125 L 3 -2.78125 L 3.046875 -2.828125 L 3.109375 -2.96875 L 3.0625 -3.03125 L 2.09375 -3.03125 L 2.0625 -3.0625 C 2.0625 -3.78125 2.1875 -4.390625 2.53125 -4.390625 C 2.90625 -4.390625 2.96875 -4.078125 2.984375 -3.9375 L 3.09375 -3.90625 L 3.53125 -4.28125 C 3.4375 -4.46875 3.234375 -4.65625 2.8125 -4.65625 C 2.3125 -4.65625 1.84375 -4.390625 1.609375 -3.921875 C 1.484375 -3.671875 1.46875 -3.3125 1.453125 -3.0625 L 1.421875 -3.03125 Z M 0.59375 -3.03125"
	// outlineTwo draws the digit 2 (authored, not placed).
	outlineTwo = "M 3.359375 -0.359375 L 3.421875 -0.3125 C 3.40625 0.59375 3.03125 1.34375 2.203125 1.34375 C 1.921875 1.34375 1.5625 1.046875 1.421875 0.796875 L 1.3125 0.796875 L 0.921875 1.234375 C 1.3125 1.546875 1.671875 1.625 2.015625 1.625 C 2.484375 1.625 2.890625 1.515625 3.296875 1.25 C 3.453125 1.140625 3.75 0.90625 3.875 0.59375 C 4.03125 0.1875 4.03125 -0.3125 4.03125 -0.578125 C 4.03125 -2.03125 4.0625 -2.53125 4.109375 -3.15625 L 4 -3.203125 L 3.59375 -3 C 3.328125 -3.171875 3 -3.234375 2.671875 -3.234375 C 1.640625 -3.234375 0.875 -2.5 0.875 -1.28125 C 0.875 -0.46875 1.359375 0.078125 2.015625 0.078125 C 2.5 0.078125 2.9375 -0.15625 3.359375 -0.359375 Z M 3.421875 -0.6875 C 3.25 -0.5625 2.8125 -0.359375 2.453125 -0.359375 C 2.046875 -0.359375 1.546875 -0.796875 1.546875 -1.421875 C 1.546875 -1.859375 1.609375 -2.375 2.015625 -2.71875 C 2.203125 -2.890625 2.453125 -3 2.71875 -3 C 3.078125 -3 3.375 -2.859375 3.421875 -2.53125 Z M 3.421875 -0.6875"
	// outlinePrimeSmall draws a smaller prime mark.
	outlinePrimeSmall = "M 1.796875 -2.3125 C 1.796875 -2.328125 1.84375 -2.421875 1.84375 -2.5 C 1.84375 -2.671875 1.6875 -2.78125 1.53125 -2.78125 C 1.328125 -2.78125 1.28125 -2.625 1.25 -2.5625 L 0.484375 -0.40625 C 0.46875 -0.34375 0.46875 -0.328125 0.46875 -0.3125 C 0.46875 -0.234375 0.671875 -0.1875 0.671875 -0.1875 C 0.71875 -0.1875 0.734375 -0.21875 0.765625 -0.28125 Z M 1.796875 -2.3125"
	// outlineFourA draws the first half of the label 4.
	outlineFourA = "M 0.390625 -3.15625 L 0.390625 -2.6875 C 0.453125 -2.6875 0.546875 -2.703125 0.625 -2.703125 C 0.78125 -2.703125 0.9375 -2.671875 0.9375 -2.53125 L 0.9375 -0.484375 L 0.359375 -0.484375 L 0.359375 0 L 1.984375 0 L 1.984375 -0.484375 L 1.46875 -0.484375 L 1.46875 -3.234375 Z M 1.03125 -4.84375 C 0.84375 -4.8125 0.6875 -4.640625 0.6875 -4.453125 C 0.6875 -4.265625 0.84375 -4.046875 1.078125 -4.046875 C 1.296875 -4.046875 1.484375 -4.21875 1.484375 -4.453125 C 1.484375 -4.640625 1.328125 -4.84375 1.09375 -4.84375 C 1.078125 -4.84375 1.046875 -4.84375 1.03125 -4.84375 Z M 1.03125 -4.84375"
	// outlineFourB draws the second half of the label 4.
	outlineFourB = "M 2.453125 -4.765625 L 2.453125 -4.296875 C 2.53125 -4.296875 2.625 -4.296875 2.703125 -4.296875 C 2.875 -4.296875 3.03125 -4.265625 3.03125 -4.109375 L 3.03125 -2.859375 C 2.6875 -3.125 2.140625 -3.234375 1.75 -3.234375 C 0.734375 -3.234375 0.328125 -2.390625 0.328125 -1.609375 C 0.328125 -1.15625 0.453125 -0.6875 0.765625 -0.34375 C 1.015625 -0.078125 1.375 0.03125 1.734375 0.03125 C 2.171875 0.03125 2.671875 -0.125 3 -0.4375 L 3 0.03125 L 4.125 0.03125 L 4.125 -0.484375 L 3.8125 -0.484375 C 3.6875 -0.484375 3.546875 -0.5 3.546875 -0.625 L 3.546875 -4.84375 Z M 0.9375 -1.484375 L 0.9375 -1.5625 C 0.9375 -2.125 1.15625 -2.765625 2.03125 -2.765625 C 2.375 -2.765625 2.78125 -2.625 2.953125 -2.3125 C 2.96875 -2.28125 2.984375 -2.25 3 -2.203125 L 3 -1.25 C 3 -0.921875 2.625 -0.609375 2.359375 -0.515625 C 2.234375 -0.453125 2.09375 -0.4375 1.953125 -0.4375 C 1.65625 -0.4375 1.359375 -0.546875 1.171875 -0.765625 C 1 -0.96875 0.96875 -1.21875 0.9375 -1.484375 Z M 0.9375 -1.484375"
	// outlineFive draws the label 5.
	outlineFive = "M 3.90625 -3.4375 L 3.875 -3.46875 C 3.34375 -3.453125 2.75 -3.421875 2.3125 -3.421875 C 1.25 -3.421875 1.25 -3.453125 0.6875 -3.46875 L 0.640625 -3.4375 L 0.640625 -3.203125 L 0.6875 -3.171875 C 1.34375 -3.1875 1.828125 -3.203125 1.96875 -3.203125 C 2 -3.203125 2.015625 -3.1875 2.015625 -3.171875 C 2.03125 -3.015625 2.03125 -2.296875 2.03125 -1.890625 C 2.03125 -1.265625 2 -0.625 1.953125 0 L 2.015625 0.046875 L 2.609375 -0.078125 C 2.5625 -0.6875 2.53125 -1.578125 2.53125 -2.1875 C 2.53125 -2.578125 2.546875 -3.078125 2.546875 -3.15625 C 2.546875 -3.1875 2.5625 -3.203125 2.609375 -3.203125 C 2.734375 -3.203125 2.859375 -3.203125 3.859375 -3.15625 L 3.90625 -3.1875 Z M 3.90625 -3.4375"
)

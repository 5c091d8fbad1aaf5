// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt19937

// allOnesSquaredModPhi is the product of two all-ones 624-word polynomials
// reduced modulo φ, cross-checked against an independent big-integer
// computation.
var allOnesSquaredModPhi = [624]uint32{
	0x00000000, 0x40000000, 0xffff5555, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	0xffffffff, 0xaaafffff, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x000002aa, 0xaaaaaa80,
	0x002aaaaa, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x55554000, 0x55555555, 0x01555555,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0xa0000000, 0xaaaaaaaa,
	0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x0000000a, 0x55555555, 0x80155555,
	0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xffffffaa, 0x55555557, 0x55555555, 0x55555555,
	0x55555555, 0xffff5555, 0xffffffff, 0xaaaad7ff, 0xfffffabe, 0xafffffff, 0x0000000a, 0x00000000,
	0x00000000, 0x00000000, 0x55554000, 0xffffd5f5, 0xffffffff, 0xffffffff, 0xffffffff, 0x07ffffff,
	0x55000000, 0x55555555, 0x00015055, 0x00000000, 0x00000000, 0x00000000, 0xc0000000, 0xffffffff,
	0xffffffff, 0x555fd7ff, 0x55555555, 0x55555555, 0xaaaaaad5, 0x5ffffffa, 0x55555555, 0xad555555,
	0xfffeaaaa, 0xffffffff, 0xffffffff, 0xffffffff, 0x5555557f, 0x55555555, 0xfff55555, 0x555fffff,
	0x00055555, 0x00005540, 0xffffe000, 0xffffffff, 0x0000007f, 0x00555550, 0x55000000, 0xffd55555,
	0xffffffff, 0xffffffff, 0xffffffff, 0x000003ff, 0x28000000, 0xf8000000, 0xabffffff, 0xaabffaaa,
	0x5552aaaa, 0x00005555, 0x00000000, 0x40000000, 0x95555555, 0x0aaaaaaa, 0x00000000, 0x00000000,
	0xaaa80000, 0x000002aa, 0x00000000, 0xaaaaaaaa, 0x55555554, 0x05540000, 0xfe000000, 0xffffffff,
	0xaaaabfff, 0xaaaaaaaa, 0xfffffffa, 0x0000000f, 0xaaaaaaa8, 0x552aaaaa, 0x00055555, 0x00000000,
	0x00000000, 0xaaaaaa80, 0x5555552a, 0x55000015, 0x00000001, 0xaa800000, 0xaaaaaaaa, 0xaaaaaaaa,
	0xfffffeaa, 0x000003ff, 0x000000a8, 0xe0000000, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	0x00001fff, 0x55555540, 0x55555555, 0x55555555, 0xffff5555, 0xffffffff, 0xaaaaffff, 0x0000fffe,
	0xaaaaaa00, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x002aaaaa, 0xaaaaaaa0, 0xfffffaaa,
	0xffffffff, 0xffffffff, 0x57ffffff, 0x00555555, 0x00000000, 0x55555500, 0x55555555, 0x55555555,
	0x55555555, 0x15555555, 0x2aaaaaa8, 0x00000000, 0xaaaaa800, 0xaaaaaaaa, 0xaaaaaaaa, 0x5555552a,
	0xf5555555, 0xaaaaaabf, 0xfaaaaaaa, 0xffffffff, 0xffffffff, 0xffffffff, 0x00007fff, 0x55555000,
	0x55555555, 0x55555555, 0x55555555, 0x55555555, 0x00005555, 0xffffe000, 0x55557fff, 0xffffffd5,
	0xaaaaaaaf, 0xaaaaaaaa, 0x02aaaaaa, 0x55000000, 0xaab55555, 0xaaaaaaaa, 0x55555400, 0xd5555555,
	0xfffeaaaa, 0xbfffffff, 0xffeaaaaa, 0x0007ffff, 0x00000000, 0xaaaaaa00, 0xaaaaaaaa, 0x015fffaa,
	0x00000000, 0xeaaaaaaa, 0xffffffff, 0xffffffff, 0xaaaaafff, 0xffffffaa, 0x0affffff, 0x00000000,
	0x05555550, 0xfe000000, 0xffffffff, 0xfffd7fff, 0xffffffff, 0x57ffffff, 0xaa000000, 0xaaaaaaaa,
	0x552aaaaa, 0x00000155, 0x55400000, 0x55555555, 0x15555555, 0xaaaaaaa8, 0xaaaaaaaa, 0x7ffffffe,
	0xaaaaa000, 0x000aaaaa, 0x00000000, 0xfffaaaa0, 0xd5555555, 0x00155557, 0xe0000000, 0xffffffff,
	0xffffffff, 0xffffffff, 0xaaaaaaff, 0xfffffffa, 0xaaaaaabf, 0xaaaaaaaa, 0x5555554a, 0xd5555555,
	0xffffffff, 0xaaaad7ff, 0x5555502a, 0xafffff55, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xfffffffe,
	0xaaaabfff, 0x00057eaa, 0x55555000, 0x55555555, 0xaaaaad55, 0xaaaaaaaa, 0xffaaaaaa, 0xffffffff,
	0xaa815fff, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x015faaaa,
	0x00000000, 0x00000000, 0x0001ff80, 0x55555550, 0x55555555, 0xad555555, 0xa002aaaa, 0xaaaaaaaa,
	0xaaaaaaaa, 0xaaaaaaaa, 0x0000002a, 0x00000000, 0x00000000, 0x55400000, 0xaaa80000, 0xaaaaaaaa,
	0x55554aaa, 0x55555555, 0x55555555, 0x00000005, 0xaa000000, 0x55400002, 0x55555555, 0x55555555,
	0x55555555, 0xffffffff, 0xffffffff, 0xaffeaaaa, 0x55ffffea, 0x55555555, 0xaaad5555, 0xffffaaaa,
	0xffffffff, 0xffffffff, 0xd55fffff, 0x500000af, 0x55555555, 0xfffff555, 0x5557ffff, 0x1555fd55,
	0x55555500, 0xffaad555, 0xd555557f, 0xffffffff, 0x54aaffff, 0x55555555, 0x00001555, 0x55550000,
	0xfd555555, 0xaaaaabff, 0xfffffffe, 0x007fffff, 0x55500000, 0x05555555, 0x55000000, 0x15555555,
	0xaaaaa000, 0x0000000a, 0x00000000, 0xaa800000, 0x2aaaaaaa, 0x00000000, 0xaaaaaaa0, 0x00000000,
	0x554000f8, 0xe0000000, 0x5400007f, 0x55555555, 0x55555555, 0x00000055, 0x55555550, 0xaaaaaa95,
	0xaaaaaaaa, 0x0aaaaaaa, 0xaaaa0000, 0xfaaaaaaa, 0x555fd7ff, 0xaaaaaa81, 0x0557d4aa, 0x00000000,
	0xffffe000, 0x55ffffff, 0x55555555, 0x00001555, 0xfffaaaa0, 0x55400fff, 0xf5555555, 0xffffffff,
	0x07ffffff, 0x00554000, 0x28000000, 0xaa800055, 0x00aaaaaa, 0x55555000, 0xaaaaaaa0, 0x6aaaaaaa,
	0xaabffffd, 0xeaaaaaaa, 0x015557ff, 0xfaaaaa00, 0xffffffff, 0x0155557f, 0xa0000000, 0xffffffea,
	0x57ffffff, 0xf5555555, 0xffffffff, 0xffffffff, 0xa0007fff, 0xaaaaaaaa, 0xaaaaaaaa, 0x000aaaaa,
	0x00000000, 0xaaafd555, 0xffffffea, 0x552ab5ff, 0x00055555, 0xabffff80, 0x0afffffa, 0xfffff800,
	0x07d55557, 0x00554000, 0xaab55000, 0x002aaaaa, 0x555556aa, 0xfd555555, 0xfffeaaaa, 0x940aaabf,
	0x55555002, 0x4aad5555, 0x00000015, 0xaaaaaa00, 0xeaaaaaaa, 0x015fffd7, 0x5fffff50, 0xeaafffeb,
	0xffffffff, 0x555555ff, 0xffff5555, 0xffffffff, 0xa0550015, 0xa800057e, 0xfffeaa0f, 0xab5fffff,
	0x55555552, 0xfff80000, 0xffffaabf, 0x02aaaaaf, 0x00002bf5, 0xfffffaa8, 0x0affffff, 0x55500000,
	0xa83ffffd, 0xaaffeaaa, 0x4000002a, 0x55540afd, 0x55002abf, 0xd5555555, 0xffd401ff, 0x155fffff,
	0x00000000, 0xfffd5400, 0x555ffd55, 0xaaabff55, 0xffffffff, 0xaaa0007f, 0xfffffffa, 0xffffffff,
	0x55555fff, 0x00554005, 0x155ffa80, 0x00000000, 0x5555554a, 0x7fffffd5, 0x05540000, 0xfff50000,
	0x57ff557f, 0x5507d555, 0x00005555, 0xaaaab550, 0xaaaaaaaa, 0x55555556, 0xaafd5555, 0xbffffeaa,
	0xaa940aaa, 0xfffffffa, 0x400007ff, 0x55555555, 0xffffffff, 0x82bfffff, 0x55540aaa, 0xab5fffff,
	0xaabffaaa, 0xaaaaaaaa, 0x00000000, 0xaaaaaa00, 0x40aaaaaa, 0xabf50055, 0xa502aaaa, 0xfffffeaa,
	0xaaab5fff, 0xaaaaaaaa, 0x155552aa, 0x05555500, 0x5fa80000, 0xfd555555, 0xffffffff, 0x000affff,
	0x55555000, 0x00029555, 0xd5555540, 0x02bfffff, 0xbf555555, 0xffffaaaa, 0x557fffff, 0xaaaa8155,
	0x55400aaa, 0x55555555, 0x00aaa801, 0xaaaaaaa8, 0x55000000, 0xd5555555, 0x00000aaa, 0x00000000,
	0x00000000, 0xfaaaaaa0, 0x2aaaaabf, 0x00155550, 0x4a000000, 0x55555555, 0xaad55555, 0xaaaffeaa,
	0xd5555faa, 0x555555ff, 0x000007d5, 0x05555500, 0xffffffe0, 0x03ffffff, 0x00000000, 0xffffa800,
	0xaaaaaaab, 0xfaaa940a, 0xffffffff, 0x55400007, 0xff555555, 0xffffffff, 0xaa82bfff, 0x0005540a,
	0x5554a000, 0x55554005, 0xff555555, 0xffffffff, 0xffffffff, 0x0015ffff, 0x557ff500, 0x555afd55,
	0x00000001, 0x555554a0, 0x55555555, 0xffeaaaad, 0xfffaaaaa, 0x540057ff, 0xfffd5555, 0xffffffff,
	0xaaaaaaff, 0xfffffffa, 0x0000003f, 0xaa800000, 0xf557eaaa, 0x0015ffff, 0x55555500, 0xaaaad555,
	0x5555557e, 0xfffffff5, 0xabffffff, 0xaaaa0002, 0x00aaaaaa, 0x55550000, 0x55555555, 0xfffffff5,
	0xffffffff, 0x5fffffff, 0x00055555, 0xfa800000, 0xaaaabfff, 0xffe0aaaa, 0xffffffff, 0x00007fff,
	0x00000554, 0xffd55555, 0x7fffffff, 0x00155555, 0x55500000, 0x55555555, 0xaaa95555, 0xffffffff,
	0x01555557, 0xf5555550, 0xfffaaaab, 0x07ffffff, 0x55554000, 0x55555555, 0x55555555, 0xa0000015,
	0x0000002a, 0xaaaaaaa0, 0xaaaaaaaa, 0x0000aaaa, 0x00000000, 0x00000000, 0xaaaaaa00, 0xaaaaabff,
	0x01555502, 0x00000000, 0xfffffffe, 0xffffffff, 0xffffffff, 0xaaaaafff, 0xaaaaa002, 0x000002aa,
	0x00000000, 0x50000000, 0x55555555, 0x55555555, 0xffffd555, 0xffffaabf, 0xaaaabfff, 0xffffffff,
	0x7fffffff, 0x55555555, 0x55555555, 0x00015555, 0x0002aa00, 0xaaaa0000, 0xffffffaa, 0xffffffff,
	0xffffffff, 0xffffffff, 0xffffffff, 0xffeaafff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	0xffffffff, 0xffffffff, 0xff557fff, 0xffffffff, 0xaaaabfff, 0xaaaaaaaa, 0xaaaaaaaa, 0x00000000,
}

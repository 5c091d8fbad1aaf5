// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrg32k3a

// jumpMat1[i][j] is A^((j+1)·8^i) mod m₁ for i ∈ [0, 20] and j ∈ [0, 6],
// where A is the companion matrix of the component recurrence.
var jumpMat1 = [21][7][3][3]uint64{
	{
		{{0, 1, 0}, {0, 0, 1}, {4294156359, 1403580, 0}},
		{{0, 0, 1}, {4294156359, 1403580, 0}, {0, 4294156359, 1403580}},
		{{4294156359, 1403580, 0}, {0, 4294156359, 1403580}, {244671815, 2941890554, 4294156359}},
		{{0, 4294156359, 1403580}, {244671815, 2941890554, 4294156359}, {149925673, 489343630, 2941890554}},
		{{244671815, 2941890554, 4294156359}, {149925673, 489343630, 2941890554}, {3782722441, 1831234280, 489343630}},
		{{149925673, 489343630, 2941890554}, {3782722441, 1831234280, 489343630}, {1527363550, 2758233149, 1831234280}},
		{{3782722441, 1831234280, 489343630}, {1527363550, 2758233149, 1831234280}, {4072640363, 939574583, 2758233149}},
	},
	{
		{{1527363550, 2758233149, 1831234280}, {4072640363, 939574583, 2758233149}, {2064391165, 3228066636, 939574583}},
		{{736416029, 2961816100, 342112271}, {387300998, 1062452522, 2961816100}, {2955879160, 340793741, 1062452522}},
		{{3830731060, 3351104823, 355092062}, {4271633387, 3081436279, 3351104823}, {2754512837, 673113417, 3081436279}},
		{{1243502014, 2218748291, 1709215645}, {2019641772, 3847560959, 2218748291}, {3866010231, 2305448679, 3847560959}},
		{{753665800, 3956261650, 1880714717}, {3889504807, 299844503, 3956261650}, {3555787878, 734199116, 299844503}},
		{{1402917279, 671479916, 279477115}, {1066184965, 1957999095, 671479916}, {3803905489, 2154014226, 1957999095}},
		{{1519817277, 3513041072, 37163717}, {3823126416, 1394452522, 3513041072}, {762181894, 1046733826, 1394452522}},
	},
	{
		{{3241775219, 3453352062, 3721871040}, {4062454730, 3015754, 3453352062}, {919711945, 613405362, 3015754}},
		{{1955221006, 1414472808, 1746037714}, {3653507277, 1644962013, 1414472808}, {3501544776, 2336229602, 1644962013}},
		{{2883496440, 2415235089, 3754924652}, {2873360987, 3093961248, 2415235089}, {2551531030, 3967481377, 3093961248}},
		{{1170096663, 49135452, 3441537107}, {1857945175, 1649398389, 49135452}, {333002869, 3109147376, 1649398389}},
		{{3782304170, 536558728, 1207462427}, {2479820532, 1357898065, 536558728}, {3967038637, 280429670, 1357898065}},
		{{1850220783, 2237648487, 4288110946}, {778070070, 3729077970, 2237648487}, {1095506872, 3284249345, 3729077970}},
		{{3963964167, 1824244353, 1280698295}, {1736039316, 2491872331, 1824244353}, {1645622379, 4226305484, 2491872331}},
	},
	{
		{{2299034194, 2297111910, 862649200}, {1399961132, 996706937, 2297111910}, {3439056503, 1481993076, 996706937}},
		{{4146310528, 458782589, 1007330283}, {4241015765, 3979619964, 458782589}, {553886495, 2186897562, 3979619964}},
		{{1146235803, 3119708691, 3977084597}, {1030264372, 1706820424, 3119708691}, {2210423860, 4154877869, 1706820424}},
		{{3630027893, 2130448350, 292773857}, {1392525159, 1299285967, 2130448350}, {2589171163, 1217405758, 1299285967}},
		{{3841954865, 948545149, 4067146304}, {4218117763, 3741945962, 948545149}, {1745368878, 730788749, 3741945962}},
		{{2341737887, 1393299668, 3386176735}, {1655556841, 359678770, 1393299668}, {2175543957, 3314680006, 359678770}},
		{{3121396438, 3210334684, 1062918236}, {325732785, 2721675172, 3210334684}, {3182328265, 241385543, 2721675172}},
	},
	{
		{{892409263, 1999175811, 2979225418}, {1996163538, 2148702503, 1999175811}, {3922720782, 103819730, 2148702503}},
		{{1586003016, 2114210471, 3240775579}, {2777288607, 1400478398, 2114210471}, {3018215420, 535326008, 1400478398}},
		{{377225862, 1098715579, 1378248654}, {2452527982, 3677219860, 1098715579}, {3805011027, 3962510930, 3677219860}},
		{{2188531273, 1783231160, 3576659343}, {1908318389, 379210133, 1783231160}, {554369329, 250053591, 379210133}},
		{{2249717607, 2266741858, 2040546316}, {3093925525, 3510732546, 2266741858}, {2244264588, 3926709784, 3510732546}},
		{{2349663769, 2339070143, 3651849809}, {1360064932, 443349145, 2339070143}, {2864061919, 590074072, 443349145}},
		{{299115015, 4017647307, 737449908}, {1014398637, 352887003, 4017647307}, {2268496651, 499779786, 352887003}},
	},
	{
		{{4022841636, 3951951872, 2143424240}, {1046219306, 1591992468, 3951951872}, {1510277444, 381333958, 1591992468}},
		{{2256493727, 3715182130, 642697923}, {3615342722, 3975008370, 3715182130}, {2405650329, 754337639, 3975008370}},
		{{3246129870, 3068844475, 3738266208}, {668859604, 3798586786, 3068844475}, {3275530821, 2740099935, 3798586786}},
		{{1286664224, 627406673, 963516608}, {1541344588, 460768826, 627406673}, {1089892553, 2717717970, 460768826}},
		{{2092934033, 2692683366, 2826944083}, {1909409603, 3350132528, 2692683366}, {3481095738, 3485350450, 3350132528}},
		{{1918719231, 2970279915, 803149880}, {2389311995, 4195833089, 2970279915}, {166509779, 2105299796, 4195833089}},
		{{3252663202, 2481165293, 694007918}, {1921953957, 350878042, 2481165293}, {1954500233, 1970948165, 350878042}},
	},
	{
		{{2956342842, 3471097641, 2353092905}, {2996150472, 420480221, 3471097641}, {2221681883, 372736411, 420480221}},
		{{420492906, 153526651, 3499730988}, {2662640502, 3278195133, 153526651}, {4086436419, 2510762118, 3278195133}},
		{{600928360, 715341436, 3127996992}, {4276221887, 1953220754, 715341436}, {2074032202, 163100603, 1953220754}},
		{{3310184147, 2228376089, 823220763}, {3992771814, 1693168425, 2228376089}, {2295790366, 1401872772, 1693168425}},
		{{1282168185, 2751813658, 602760489}, {2254465781, 1232521545, 2751813658}, {1025381169, 1981662800, 1232521545}},
		{{460755919, 4283511820, 3208183750}, {3248110895, 730327118, 4283511820}, {1386862282, 926261676, 730327118}},
		{{2392208153, 3129124418, 684400653}, {4025364146, 1122067473, 3129124418}, {773418203, 2967386517, 1122067473}},
	},
	{
		{{2529428830, 1497104068, 4253248635}, {3746310018, 630867741, 1497104068}, {627043435, 721725795, 630867741}},
		{{2571072593, 3039669025, 1591031831}, {526054481, 661344445, 3039669025}, {4246010312, 735391270, 661344445}},
		{{3781620139, 2917363935, 2936154555}, {2668364492, 3297773364, 2917363935}, {2501878263, 3438979384, 3297773364}},
		{{1847312821, 4042890210, 4241772463}, {606605705, 2644799309, 4042890210}, {2658402822, 1342278931, 2644799309}},
		{{3502592220, 3704088248, 4011400538}, {2932838910, 1175764916, 3704088248}, {2865336247, 2471593729, 1175764916}},
		{{3250474907, 3775615386, 3733878711}, {1502779384, 287728234, 3775615386}, {162441370, 246229618, 287728234}},
		{{749636765, 3227070913, 3120894575}, {2853687796, 1910085226, 3227070913}, {2453891386, 4230641571, 1910085226}},
	},
	{
		{{2409846784, 1096138313, 1416249993}, {1501878241, 138013862, 1096138313}, {1617749306, 1975136163, 138013862}},
		{{599453422, 73950522, 2965395603}, {55354701, 3855242202, 73950522}, {3981734504, 3354399019, 3855242202}},
		{{3515748818, 1941532786, 3590950415}, {3557298699, 2872969148, 1941532786}, {3200219335, 3657910297, 2872969148}},
		{{4271076381, 813410089, 3461955319}, {1044920137, 3029005516, 813410089}, {3501837362, 3321539504, 3029005516}},
		{{1749168476, 312277958, 960113158}, {3444686334, 4207289909, 312277958}, {2940543965, 559813450, 4207289909}},
		{{316005085, 3130396563, 3837877063}, {1625744025, 2903706877, 3130396563}, {201947523, 3713704391, 2903706877}},
		{{2725645318, 3806079268, 2159958180}, {1110389513, 1295130289, 3806079268}, {2596032611, 1951986222, 1295130289}},
	},
	{
		{{3058183515, 941408572, 1783998098}, {1546486080, 4116985007, 941408572}, {2247500745, 1460625377, 4116985007}},
		{{4216782514, 3352801941, 2315095646}, {639029973, 94451952, 3352801941}, {1242898773, 3964593332, 94451952}},
		{{3704530610, 1763750345, 4252200234}, {3310872720, 3465004782, 1763750345}, {1602573750, 530766064, 3465004782}},
		{{2264905138, 1926285644, 1108147171}, {2390706911, 385258225, 1926285644}, {3569882325, 3728744670, 385258225}},
		{{1104250853, 2649508927, 1011964068}, {1303004323, 2245340871, 2649508927}, {2225918280, 1790484033, 2245340871}},
		{{704130800, 2663175885, 3195438389}, {2578332381, 377826974, 2663175885}, {3055477316, 116744102, 377826974}},
		{{1534677729, 1538922981, 1955454860}, {3358514099, 279668397, 1538922981}, {1333529549, 1503627474, 279668397}},
	},
	{
		{{270679073, 1065683096, 2992662885}, {4196917281, 2886425156, 1065683096}, {749134119, 1849148167, 2886425156}},
		{{35689930, 1378151623, 951629713}, {673810920, 948843427, 1378151623}, {3808868984, 927013635, 948843427}},
		{{1708907294, 3971013929, 120796985}, {341462694, 1820387182, 3971013929}, {658508974, 1448556483, 1820387182}},
		{{1891490872, 1130489594, 3734864133}, {1457450350, 3362920032, 1130489594}, {638998846, 1401175590, 3362920032}},
		{{2493538871, 1119726169, 3415942617}, {3041636598, 2163282065, 1119726169}, {3770868549, 1056545317, 2163282065}},
		{{3254893662, 3244521128, 1199630310}, {4235017122, 2943451417, 3244521128}, {2697569444, 4187443436, 2943451417}},
		{{4046281084, 3800263816, 3215056790}, {1654449614, 386290994, 3800263816}, {1471940141, 481393463, 386290994}},
	},
	{
		{{2254459023, 2384691454, 1730098031}, {2844861718, 1807491073, 2384691454}, {351423668, 1570264155, 1807491073}},
		{{3047429268, 4245359555, 2449575498}, {1797081212, 1237196477, 4245359555}, {143400628, 3663731096, 1237196477}},
		{{2147359263, 1349445168, 2733446300}, {1305907164, 210670816, 1349445168}, {2509073771, 839244126, 210670816}},
		{{3313321106, 4263819658, 1047529624}, {3719941673, 3155049403, 4263819658}, {1981313839, 4281524426, 3155049403}},
		{{1429567203, 899246895, 3248764453}, {2783815531, 108747348, 899246895}, {256526168, 1467875854, 108747348}},
		{{2740000743, 1423127512, 1283194774}, {700110581, 582760735, 1423127512}, {571933335, 785351190, 582760735}},
		{{448747464, 852164586, 412380392}, {497540878, 2374838356, 852164586}, {1830234951, 2052902650, 2374838356}},
	},
	{
		{{2005252417, 3263186729, 1535805957}, {2951515865, 1729281525, 3263186729}, {1141249417, 2268963059, 1729281525}},
		{{2367065164, 83908466, 4294308508}, {1352516724, 1416676049, 83908466}, {1040867745, 1304732377, 1416676049}},
		{{2985917792, 4096493219, 1529477403}, {1201774212, 2070059496, 4096493219}, {1675108536, 3110356679, 2070059496}},
		{{3214147257, 1434230503, 2944821434}, {2753040912, 4041536918, 1434230503}, {1317260239, 338830578, 4041536918}},
		{{3409339184, 2193226133, 1795377731}, {1348686132, 3710830263, 2193226133}, {2242696089, 3564440066, 3710830263}},
		{{3189933295, 1475654090, 2785534584}, {4286962883, 2397146654, 1475654090}, {403072156, 2221537290, 2397146654}},
		{{741855424, 1898764790, 1822660758}, {1315270526, 1027835471, 1898764790}, {3142787072, 3867031443, 1027835471}},
	},
	{
		{{300628476, 2054743463, 1499597869}, {1762244284, 1422043015, 2054743463}, {3581125669, 1207561803, 1422043015}},
		{{4171745404, 4064983592, 1934508265}, {3049723261, 1744636487, 4064983592}, {947753516, 3952135907, 1744636487}},
		{{392234088, 1933162500, 3586081024}, {4234172394, 2757237142, 1933162500}, {3177450083, 2703743057, 2757237142}},
		{{1625369148, 3577024659, 2778677259}, {1729967818, 1049600974, 3577024659}, {2089137344, 1569794605, 1049600974}},
		{{24259337, 1099944220, 56936276}, {2473082148, 2484906695, 1099944220}, {4143714563, 1902230902, 2484906695}},
		{{53562000, 2164320300, 319591773}, {480516705, 2016775973, 2164320300}, {3670445841, 1306292301, 2016775973}},
		{{1588148001, 2552094779, 2777917575}, {3446764329, 4181915770, 2552094779}, {2748502268, 1366641757, 4181915770}},
	},
	{
		{{1373068765, 3958611830, 569117280}, {410042396, 3551255470, 3958611830}, {869476379, 1680625376, 3551255470}},
		{{2108618602, 2543645250, 913717833}, {2111984988, 1012482542, 2543645250}, {2545745615, 3141042890, 1012482542}},
		{{1200101967, 3500039413, 1380082835}, {1489246316, 1939611745, 3500039413}, {1721948148, 3454434256, 1939611745}},
		{{1157293598, 584852249, 2272893205}, {1631801979, 3013855247, 584852249}, {3977310441, 82049263, 3013855247}},
		{{3527704969, 2070084361, 2336461093}, {675176428, 59273233, 2070084361}, {215288790, 1628101656, 59273233}},
		{{3037143591, 2883460010, 26163475}, {1380682893, 3598790241, 2883460010}, {1573828863, 3515570245, 3598790241}},
		{{2503812675, 2054481550, 2095990336}, {4200011507, 3373769861, 2054481550}, {1172973983, 1101682881, 3373769861}},
	},
	{
		{{3580234334, 3137526662, 2403875621}, {3580869206, 3670086228, 3137526662}, {656744553, 1764904195, 3670086228}},
		{{2792496861, 3634185196, 3887031679}, {3601823850, 3464838365, 3634185196}, {3136165138, 2842987937, 3464838365}},
		{{860869470, 981305692, 955067142}, {1287512071, 3232580086, 981305692}, {1932329582, 2220460662, 3232580086}},
		{{1362557480, 3230022138, 4278720212}, {3427386258, 3848976950, 3230022138}, {2109817045, 2441486578, 3848976950}},
		{{2708545360, 267497185, 2662390285}, {13298153, 1401050440, 267497185}, {2610290298, 574376174, 1401050440}},
		{{4064509494, 1054794505, 2873059524}, {2518650890, 2583418592, 1054794505}, {2277374582, 2950188629, 2583418592}},
		{{43539574, 3585947086, 1551803386}, {4188500293, 3646000753, 3585947086}, {1152314996, 3244390048, 3646000753}},
	},
	{
		{{1198519135, 2007945401, 3868481}, {3335076429, 2082683147, 2007945401}, {2341088247, 888193479, 2082683147}},
		{{3473925387, 3193380570, 565138859}, {307060547, 782210925, 3193380570}, {167617770, 2180014252, 782210925}},
		{{3946174395, 938410993, 2583257939}, {898527522, 1909350615, 938410993}, {1517357015, 2538479259, 1909350615}},
		{{3811588895, 3303532086, 2766583698}, {908630605, 2665400165, 3303532086}, {2499994113, 3316180851, 2665400165}},
		{{2828295511, 296464469, 3400652741}, {3697213244, 3884416364, 296464469}, {2902099262, 1705355356, 3884416364}},
		{{3952581582, 91397022, 1472690314}, {2332659451, 3813545212, 91397022}, {2942299995, 3287843695, 3813545212}},
		{{1334460780, 861234488, 2817452481}, {435895955, 3356827989, 861234488}, {1590379239, 2041861019, 3356827989}},
	},
	{
		{{4288926968, 3033075037, 1505732852}, {1531633406, 645804125, 3033075037}, {2942690261, 2205365640, 645804125}},
		{{3976196483, 3651411522, 1652430357}, {1690405883, 1294990760, 3651411522}, {209339647, 3088484327, 1294990760}},
		{{3313281387, 404839765, 4119379625}, {1282760808, 1769786574, 404839765}, {2156822533, 2134509408, 1769786574}},
		{{3171589548, 2291131070, 2093793287}, {2997812074, 4093879780, 2291131070}, {3255666800, 858124816, 4093879780}},
		{{2671377286, 4060168649, 2412035287}, {2560486338, 828012431, 4060168649}, {431779937, 1288430895, 828012431}},
		{{3419357098, 2547678446, 3186955890}, {3335475366, 2875872016, 2547678446}, {1190772134, 216187195, 2875872016}},
		{{2462780486, 3788991986, 2965830319}, {4101189674, 1696959105, 3788991986}, {170171245, 376763544, 1696959105}},
	},
	{
		{{4113016361, 2999667479, 3995043314}, {1333973326, 4007774239, 2999667479}, {3322921863, 4278103786, 4007774239}},
		{{925786347, 2109676036, 1879981040}, {1701566570, 1489702270, 2109676036}, {2719807628, 158549605, 1489702270}},
		{{988998360, 4224987734, 2705609303}, {3781735882, 3210618179, 4224987734}, {2000646801, 3763764745, 3210618179}},
		{{2255405265, 3460246357, 218033453}, {2135115875, 359516994, 3460246357}, {3568862459, 3114762683, 359516994}},
		{{3151385849, 2749420870, 1663192542}, {3858805987, 658557447, 2749420870}, {3895454596, 3780884000, 658557447}},
		{{1720065491, 953484022, 1382647120}, {1315666944, 2456296663, 953484022}, {572064418, 2149791939, 2456296663}},
		{{2767100879, 4015038188, 1215355080}, {3185998778, 1592475141, 4015038188}, {135551392, 4171059118, 1592475141}},
	},
	{
		{{773148471, 4117539411, 3073622315}, {3807175775, 186466108, 4117539411}, {2842197411, 651334129, 186466108}},
		{{615242951, 1475251263, 3586439101}, {1693917167, 3058812486, 1475251263}, {568701600, 1164226398, 3058812486}},
		{{3729302216, 1041711449, 2647679194}, {3878048889, 135488725, 1041711449}, {508494460, 2178143073, 135488725}},
		{{1632636204, 15370275, 2061555515}, {4187505695, 1741164221, 15370275}, {2882176274, 3978412194, 1741164221}},
		{{4199667935, 4240821442, 3087593298}, {2968278570, 2185585470, 4240821442}, {2826850420, 371506848, 2185585470}},
		{{4002434761, 1455254388, 1267013695}, {2324442395, 2192287989, 1455254388}, {3389390262, 2190852671, 2192287989}},
		{{3722528722, 3193070982, 1527096340}, {3155996013, 2278658572, 3193070982}, {2051186788, 4289100465, 2278658572}},
	},
	{
		{{3446066703, 344820524, 74213775}, {1008543583, 2579620192, 344820524}, {3753911358, 1538453821, 2579620192}},
		{{3600859892, 1269921024, 4069458760}, {2050939727, 2222725697, 1269921024}, {3208347646, 690898125, 2222725697}},
		{{2580978896, 2572090525, 3334144098}, {804558063, 250626667, 2572090525}, {843125518, 1038659713, 250626667}},
		{{599407451, 2806239788, 1742216102}, {975123999, 764869161, 2806239788}, {2729710367, 1845257036, 764869161}},
		{{1900612628, 1237821080, 3847187360}, {4059416755, 2650131939, 1237821080}, {31199658, 2064718263, 2650131939}},
		{{1347324880, 3034196764, 3435152676}, {2459581108, 68307108, 3034196764}, {4060225449, 1313975073, 68307108}},
		{{832405527, 4273872816, 2483412578}, {1083671641, 2619838177, 4273872816}, {3452165941, 3089879239, 2619838177}},
	},
}

// jumpMat2[i][j] is A^((j+1)·8^i) mod m₂ for i ∈ [0, 20] and j ∈ [0, 6],
// where A is the companion matrix of the component recurrence.
var jumpMat2 = [21][7][3][3]uint64{
	{
		{{0, 1, 0}, {0, 0, 1}, {4293573854, 0, 527612}},
		{{0, 0, 1}, {4293573854, 0, 527612}, {2706407399, 4293573854, 3497978192}},
		{{4293573854, 0, 527612}, {2706407399, 4293573854, 3497978192}, {1431525864, 2706407399, 3281754271}},
		{{2706407399, 4293573854, 3497978192}, {1431525864, 2706407399, 3281754271}, {97673890, 1431525864, 1673476130}},
		{{1431525864, 2706407399, 3281754271}, {97673890, 1431525864, 1673476130}, {2680076935, 97673890, 1430724370}},
		{{97673890, 1431525864, 1673476130}, {2680076935, 97673890, 1430724370}, {3405842137, 2680076935, 893509979}},
		{{2680076935, 97673890, 1430724370}, {3405842137, 2680076935, 893509979}, {4035147174, 3405842137, 3280220074}},
	},
	{
		{{3405842137, 2680076935, 893509979}, {4035147174, 3405842137, 3280220074}, {2623373296, 4035147174, 361718588}},
		{{818368950, 3790774567, 3542344109}, {1817134745, 818368950, 3321940838}, {3493477402, 1817134745, 2854655037}},
		{{508190223, 940389731, 295549677}, {548891792, 508190223, 4243623497}, {1618914183, 548891792, 2585942386}},
		{{498682467, 2928649385, 811441367}, {1777037472, 498682467, 479207863}, {3058260025, 1777037472, 1528225099}},
		{{1605006689, 1112484358, 2137070446}, {3785946674, 1605006689, 1949907406}, {3243030173, 3785946674, 2339202713}},
		{{1603012465, 493710616, 1996495269}, {3369502947, 1603012465, 1576432507}, {3762770058, 3369502947, 254897698}},
		{{1138020476, 4025114134, 3077305804}, {4152260747, 1138020476, 1057298006}, {1828211552, 4152260747, 3984471979}},
	},
	{
		{{3893311647, 3140922085, 64039185}, {82107183, 3893311647, 2655465224}, {1674879036, 82107183, 1089381262}},
		{{28639152, 3496041927, 2231910770}, {3174683233, 28639152, 2828785870}, {3681140872, 3174683233, 3910194649}},
		{{3488684910, 1250231333, 763303055}, {681409874, 3488684910, 751154769}, {3783909260, 681409874, 1465244270}},
		{{1463826069, 300842059, 3313769518}, {1799677538, 1463826069, 3174861078}, {1882279394, 1799677538, 3509975160}},
		{{2793448161, 3690337147, 4181759810}, {514622120, 2793448161, 3027286223}, {241620347, 514622120, 1328063696}},
		{{3250099852, 3207068910, 3709263791}, {2342747328, 3250099852, 3729690850}, {3983203494, 2342747328, 1023622970}},
		{{3136295372, 3178055245, 2818424094}, {2036073935, 3136295372, 3231583326}, {1782478065, 2036073935, 1053332972}},
	},
	{
		{{2092194020, 184076987, 2202401252}, {3103629604, 2092194020, 3409560232}, {4257445059, 3103629604, 2390202783}},
		{{812917091, 2574011276, 4168802395}, {209817750, 812917091, 2974870628}, {3238802184, 209817750, 3692836406}},
		{{1621943577, 2244624888, 38864005}, {3618177584, 1621943577, 3295260066}, {414159965, 3618177584, 1095692911}},
		{{477309738, 3314523413, 3442242150}, {2755731404, 477309738, 2782713347}, {1606221490, 2755731404, 1033463096}},
		{{3233499061, 2494617440, 1002517819}, {3026123612, 3233499061, 3338202446}, {1979145017, 3026123612, 3790308130}},
		{{2567113113, 781663248, 3993869449}, {402756912, 2567113113, 2817097718}, {3190930010, 402756912, 2884691291}},
		{{2223683788, 4195752245, 2738363134}, {1171605168, 2223683788, 3904649711}, {2631005941, 1171605168, 3445807882}},
	},
	{
		{{2155469603, 3326516116, 3843369786}, {288604458, 2155469603, 571673571}, {1501677614, 288604458, 2928213494}},
		{{2082469029, 749754403, 3963963316}, {2764859700, 2082469029, 3576428059}, {2840894706, 2764859700, 1782279859}},
		{{1583407457, 2056027805, 55614242}, {2405645826, 1583407457, 1737043333}, {1118910623, 2405645826, 1180559812}},
		{{3760163766, 1041986082, 1799196192}, {1022129134, 3760163766, 1332558840}, {276873446, 1022129134, 3979423632}},
		{{1438626566, 3619082489, 1569836243}, {3671597039, 1438626566, 907924984}, {3732297029, 3671597039, 1221779212}},
		{{483787924, 3115606677, 2374703971}, {117552025, 483787924, 4234241969}, {774331833, 117552025, 530787287}},
		{{955925224, 1961750426, 3644821859}, {213414981, 955925224, 927956770}, {1671634731, 213414981, 4186423122}},
	},
	{
		{{1021313167, 1312544548, 1716381787}, {3037868518, 1021313167, 199085085}, {2582787611, 3037868518, 3539882179}},
		{{2569413030, 1631336015, 2594942403}, {1030618503, 2569413030, 3467650326}, {1998739584, 1030618503, 3174552073}},
		{{2179955734, 1825159949, 1082151624}, {937147983, 2179955734, 978382746}, {2629591623, 937147983, 3579678559}},
		{{2334639309, 3114094203, 601680947}, {2110199318, 2334639309, 678342865}, {1649523168, 2110199318, 2154948056}},
		{{2715012491, 247412130, 1566452082}, {3425439428, 2715012491, 3004133824}, {1615468474, 3425439428, 588082730}},
		{{2654502125, 654123598, 3954383978}, {2454987531, 2654502125, 161781366}, {3631058630, 2454987531, 2718719935}},
		{{2620087047, 1022484731, 3275546712}, {4119759001, 2620087047, 1849544363}, {1245152096, 4119759001, 2978477502}},
	},
	{
		{{563657176, 191330473, 1641595774}, {780563537, 563657176, 3029522338}, {2037330914, 780563537, 2084602709}},
		{{3414769923, 1968799026, 2238126504}, {832866376, 3414769923, 3754780168}, {2165145850, 832866376, 1594768331}},
		{{1457310151, 2262086849, 2480319255}, {1778576621, 1457310151, 367796024}, {444536774, 1778576621, 873301213}},
		{{1646861218, 2317984620, 2301581548}, {2672536210, 1646861218, 359763062}, {2391283983, 2672536210, 1885870777}},
		{{2962497351, 1089931025, 970191811}, {2050228336, 2962497351, 1568166288}, {3288162415, 2050228336, 3921597644}},
		{{2468196470, 3544275509, 3557597196}, {3893425026, 2468196470, 2061293842}, {2019325804, 3893425026, 2905314}},
		{{3407411651, 4206194937, 989129012}, {1280115996, 3407411651, 1843205351}, {752661975, 1280115996, 693779416}},
	},
	{
		{{841254072, 3765813448, 1635365181}, {2013240130, 841254072, 605925849}, {3743932305, 2013240130, 400681955}},
		{{1930213004, 2072952279, 3077694794}, {3579956569, 1930213004, 2478539210}, {1960229502, 3579956569, 1455652656}},
		{{490241598, 1155806426, 2341304300}, {1821354750, 490241598, 2364275695}, {3717764728, 1821354750, 1349151461}},
		{{1097613522, 1784540933, 1194440107}, {321747515, 1097613522, 1225209584}, {74521379, 321747515, 4288531000}},
		{{3795899570, 3294470896, 2568537852}, {1615892324, 3795899570, 2277651644}, {245018475, 1615892324, 3269831184}},
		{{2284610128, 1711688841, 2988405862}, {1861018675, 2284610128, 3450880655}, {4077631310, 1861018675, 2595646099}},
		{{1338063869, 4236188627, 4005334159}, {2199059659, 1338063869, 3613475430}, {954928333, 2199059659, 1383222658}},
	},
	{
		{{143812745, 3254530816, 3514348856}, {769295000, 143812745, 2468210728}, {1927161272, 769295000, 522705580}},
		{{2692035063, 2596905012, 1643240704}, {1103432342, 2692035063, 1446182108}, {4161111774, 1103432342, 3076435551}},
		{{1809137988, 2412502608, 3993875038}, {1332423877, 1809137988, 3101816103}, {1366553339, 1332423877, 2986424418}},
		{{2375319030, 1391532370, 3742334018}, {1202100604, 2375319030, 4098434768}, {2327872488, 1202100604, 1471526950}},
		{{953526753, 3517620599, 1558514368}, {3674658855, 953526753, 1517070807}, {828283166, 3674658855, 2689974385}},
		{{3063334100, 3228801559, 269715831}, {612058994, 3063334100, 4143597212}, {1918225488, 612058994, 2055175984}},
		{{2623568215, 482061697, 191091208}, {2499397071, 2623568215, 2970642011}, {759749547, 2499397071, 3510580843}},
	},
	{
		{{4269164791, 2795313144, 2507855960}, {4245372460, 4269164791, 4094914553}, {3873219634, 4245372460, 1473695507}},
		{{513890845, 1208902926, 2870530442}, {1984873167, 513890845, 1257532340}, {1212627640, 1984873167, 2354363842}},
		{{3386048256, 4196280201, 3121820178}, {2926727276, 3386048256, 2790144637}, {3970110476, 2926727276, 3495704635}},
		{{1848364568, 1552116673, 3496528455}, {4160778291, 1848364568, 141769900}, {3611019106, 4160778291, 596424080}},
		{{4194097650, 3986230829, 3091752508}, {3352554321, 4194097650, 4041363667}, {3822925061, 3352554321, 3748054631}},
		{{1292986218, 172755364, 997232463}, {1505642955, 1292986218, 4112978448}, {1757204931, 1505642955, 3038511100}},
		{{3805104355, 3540279669, 2118304338}, {1984875159, 3805104355, 3000869736}, {6466700, 1984875159, 1778898381}},
	},
	{
		{{364070020, 3520039729, 837362349}, {2544671570, 364070020, 2188646679}, {163978331, 2544671570, 672947816}},
		{{1192700714, 3968150021, 298357363}, {635565666, 1192700714, 2589432341}, {2548654227, 635565666, 3531570992}},
		{{3438963520, 1845346034, 2575726025}, {2187600669, 3438963520, 958916489}, {2672427080, 2187600669, 3420061274}},
		{{2709640529, 676525399, 875361870}, {1315499519, 2709640529, 3842690720}, {3300994644, 1315499519, 2446760804}},
		{{1292317767, 393678487, 143711415}, {1162526988, 1292317767, 1311572745}, {344898630, 1162526988, 1362796547}},
		{{2857812374, 598000082, 2114605560}, {3454872661, 2857812374, 2738653578}, {2522086851, 3454872661, 1190449620}},
		{{2614530149, 753841941, 146778273}, {2511297323, 2614530149, 588764284}, {1785429779, 2511297323, 1269211096}},
	},
	{
		{{2742149264, 1410604392, 3032350755}, {3774935330, 2742149264, 597633965}, {4085935803, 3774935330, 3952463556}},
		{{3878579563, 845297523, 1721916511}, {2077922420, 3878579563, 3651360351}, {2177255734, 2077922420, 3791239282}},
		{{2642777370, 1064863813, 4046131253}, {2032494710, 2642777370, 3511906271}, {2787706468, 2032494710, 1602633162}},
		{{1570315355, 4252790045, 3522351060}, {2324624266, 1570315355, 3594939336}, {1725087354, 2324624266, 1338343327}},
		{{3128806513, 3431512800, 3791370211}, {26016991, 3128806513, 1182007239}, {2629261386, 26016991, 1219288409}},
		{{2323129699, 2040722667, 4032945011}, {1824515104, 2323129699, 783304238}, {1910382756, 1824515104, 2009721680}},
		{{495056704, 1303223717, 299029371}, {3001848199, 495056704, 2298546607}, {528121192, 3001848199, 3574765936}},
	},
	{
		{{2305761589, 381933244, 3663579047}, {1355307047, 2305761589, 313617972}, {992174375, 1355307047, 3881593435}},
		{{1667857811, 1564715297, 2263851601}, {3791771273, 1667857811, 4196134923}, {3347975047, 3791771273, 615040705}},
		{{2699274746, 2208033721, 3314336764}, {1723493827, 2699274746, 3721738282}, {3116429712, 1723493827, 763211059}},
		{{4093947334, 3454015638, 2815567716}, {4261953004, 4093947334, 3973733876}, {2979573134, 4261953004, 3757047667}},
		{{1497333242, 3837209858, 4043986454}, {3928412309, 1497333242, 4232950837}, {868538065, 3928412309, 3223762258}},
		{{4178728130, 2981026540, 3927272953}, {668310420, 4178728130, 551557198}, {3532851694, 668310420, 4119399398}},
		{{4121879899, 2179415297, 3607008098}, {243696529, 4121879899, 168490644}, {3444486351, 243696529, 752516370}},
	},
	{
		{{250120061, 570149551, 1513430926}, {3178644752, 250120061, 1701869032}, {4172515680, 3178644752, 4213855850}},
		{{4158106802, 3062358456, 1815738463}, {1379176112, 4158106802, 3926509890}, {2842564878, 1379176112, 2852219546}},
		{{4056930326, 2130453857, 3298513997}, {3059400883, 4056930326, 439468763}, {546163799, 3059400883, 1884270041}},
		{{931848746, 256263523, 2633569246}, {3284646837, 931848746, 2567084715}, {415258465, 3284646837, 2017565947}},
		{{239941751, 4065438988, 4260302551}, {3480241466, 239941751, 1576122049}, {4073589963, 3480241466, 2593293965}},
		{{507915211, 625612469, 3733827320}, {3909587424, 507915211, 3313512626}, {1707582600, 3909587424, 985910059}},
		{{3287778427, 3984689764, 3572719740}, {207904085, 3287778427, 1330617931}, {1894788630, 207904085, 1656936419}},
	},
	{
		{{1648005210, 1032291296, 3987397422}, {1831496020, 1648005210, 2829448427}, {1821082272, 1831496020, 2917140265}},
		{{4161327077, 489964129, 3870847744}, {1669447863, 4161327077, 4292947198}, {1522417114, 1669447863, 2652286672}},
		{{655280634, 3675619486, 3487203083}, {3658400031, 655280634, 4093432727}, {3338913609, 3658400031, 2005464907}},
		{{1270934555, 3136631324, 505612043}, {2981474723, 1270934555, 2528619024}, {625182639, 2981474723, 1008985039}},
		{{2670739471, 1317142118, 928068368}, {3334643457, 2670739471, 3298861790}, {3116973979, 3334643457, 4091848087}},
		{{87174298, 3714928458, 3674535785}, {3591445536, 87174298, 3557842564}, {2600409828, 3591445536, 3509905000}},
		{{1374849292, 3669747751, 313867341}, {2805321474, 1374849292, 3672378692}, {862662086, 2805321474, 1269888877}},
	},
	{
		{{280996820, 143706137, 3013099060}, {1797675893, 280996820, 3743985508}, {1123794455, 1797675893, 2460119169}},
		{{919218027, 4154920441, 1125672685}, {3933041881, 919218027, 474242849}, {564891116, 3933041881, 2263904321}},
		{{4046953169, 707039159, 59087677}, {552285455, 4046953169, 3367709189}, {1558638678, 552285455, 3541844079}},
		{{2920112852, 1965329198, 1177141043}, {2135250851, 2920112852, 969184056}, {296035385, 2135250851, 4267827987}},
		{{3182682829, 216191227, 2317042610}, {3166912454, 3182682829, 3895260799}, {3316963881, 3166912454, 2773111558}},
		{{4005961945, 962333604, 1596766252}, {155090437, 4005961945, 3465811606}, {995757623, 155090437, 842864023}},
		{{3616509225, 3195052585, 2901642782}, {4257279454, 3616509225, 3209952933}, {159699513, 4257279454, 746020360}},
	},
	{
		{{1481142942, 4120754772, 1088557292}, {265491023, 1481142942, 2860005744}, {301796252, 265491023, 1935975979}},
		{{2111859033, 2813610100, 1001476468}, {73849832, 2111859033, 3980799998}, {3330206241, 73849832, 1933943506}},
		{{4238802520, 1791251057, 3659825373}, {756158319, 4238802520, 1208877520}, {3666294602, 756158319, 1800377045}},
		{{1781286360, 3661231931, 3509383709}, {2753158871, 1781286360, 3119883109}, {3576525143, 2753158871, 551079002}},
		{{1150902763, 3730191199, 946744850}, {3422735839, 1150902763, 2750435170}, {3792794843, 3422735839, 808249292}},
		{{429107478, 1467997203, 689359610}, {3244671951, 429107478, 2795337511}, {3397069741, 3244671951, 186846111}},
		{{1453148331, 352897577, 3494583787}, {2340848640, 1453148331, 3699044308}, {3239904192, 2340848640, 209181640}},
	},
	{
		{{1185024844, 587779104, 1004942725}, {3763632860, 1185024844, 947424568}, {3811666068, 3763632860, 2352253462}},
		{{1310227170, 218138208, 3172947233}, {766129426, 1310227170, 1808643264}, {2226659371, 766129426, 3853798112}},
		{{3141996820, 528748361, 1701083808}, {2360837423, 3141996820, 2513545590}, {1425244435, 2360837423, 4192496132}},
		{{2230902378, 4243560874, 2491962392}, {3836629116, 2230902378, 3637515403}, {2846140932, 3836629116, 3083355464}},
		{{506476814, 1267508030, 152968246}, {1117668151, 506476814, 2848688169}, {3001214254, 1117668151, 3940649164}},
		{{1544421101, 772024440, 2364160468}, {2733679040, 1544421101, 965008581}, {2290142084, 2733679040, 3167919795}},
		{{2195717687, 3299928213, 1911548095}, {3677807589, 2195717687, 2979544321}, {1288751520, 3677807589, 1379093393}},
	},
	{
		{{999448569, 1464488480, 3344426626}, {946166795, 999448569, 340856814}, {3686999436, 946166795, 3231079441}},
		{{1226155368, 3477563770, 550006884}, {2378667355, 1226155368, 1493409040}, {260364836, 2378667355, 4133888397}},
		{{662024646, 2039234405, 3990280006}, {2342461604, 662024646, 17023679}, {1965981888, 2342461604, 1830518881}},
		{{1277901832, 310796286, 2818511068}, {3088910653, 1277901832, 3303406025}, {2507911914, 3088910653, 3712928074}},
		{{1103450261, 1722381279, 1394112836}, {640743651, 1103450261, 198700731}, {1095985628, 640743651, 2694625446}},
		{{4043182751, 1859059885, 1911031801}, {2638851660, 4043182751, 4012210417}, {783591639, 2638851660, 2188651115}},
		{{2318313639, 843870069, 2868175764}, {3777361816, 2318313639, 4070019017}, {2087410703, 3777361816, 2574355460}},
	},
	{
		{{481918378, 339570348, 1728801469}, {1623163429, 481918378, 2209094694}, {3146982514, 1623163429, 508445538}},
		{{3138921230, 2381863183, 1992357430}, {1024510915, 3138921230, 2122851650}, {1453455184, 1024510915, 941946604}},
		{{3235663883, 499846706, 3251827412}, {801993191, 3235663883, 2207701640}, {1201194185, 801993191, 2705683748}},
		{{2465372719, 1391015357, 3328905025}, {1821933605, 2465372719, 1343489680}, {3648970313, 1821933605, 1816599716}},
		{{582796091, 1306170361, 1574617829}, {4167642903, 582796091, 284777447}, {3124784671, 4167642903, 2539713186}},
		{{116486317, 2122591885, 1696181092}, {381403852, 116486317, 2932149608}, {3221291545, 381403852, 2742038256}},
		{{3035480468, 2182693760, 2351066479}, {638141264, 3035480468, 100617977}, {478641834, 638141264, 479301469}},
	},
	{
		{{118634664, 3358712512, 2492792220}, {348833376, 118634664, 2495544591}, {3235582254, 348833376, 4043157504}},
		{{2303067090, 3371139074, 1967771133}, {598630070, 2303067090, 1819012637}, {2049250561, 598630070, 4093044926}},
		{{897071837, 763331173, 3837362577}, {294683328, 897071837, 2496877097}, {2268904495, 294683328, 3496861697}},
		{{3035321857, 3971176093, 226779704}, {3361614254, 3035321857, 2807125404}, {326640887, 3361614254, 3147308542}},
		{{4010547095, 2725421511, 511986932}, {1545732164, 4010547095, 2643845410}, {2010134838, 1545732164, 3633977146}},
		{{3118026103, 1037137281, 1600236290}, {2957620899, 3118026103, 433027378}, {2926759199, 2957620899, 3989342054}},
		{{2423025801, 3089536821, 995021703}, {3613148280, 2423025801, 241254395}, {2857733472, 3613148280, 1868423350}},
	},
}
